package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveProcedure_CuentaPorResultado(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveProcedure("sp_consultar_expedientes", 3*time.Millisecond, nil)
	m.ObserveProcedure("sp_consultar_expedientes", 5*time.Millisecond, nil)
	m.ObserveProcedure("sp_actualizar_expediente", time.Millisecond, errors.New("timeout"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.procCallsTotal.WithLabelValues("sp_consultar_expedientes", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.procCallsTotal.WithLabelValues("sp_actualizar_expediente", "error")))
}

func TestObserveHTTP_YExposicion(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveHTTP(http.MethodGet, "/api/roles/:id", http.StatusNotFound, 10*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/roles/:id", "404")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dicri_http_requests_total")
}
