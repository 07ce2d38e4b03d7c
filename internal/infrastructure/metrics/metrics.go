// Package metrics expone métricas Prometheus del servidor HTTP y de las llamadas
// a procedimientos almacenados.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dicri"

// Metrics agrupa los colectores de la aplicación sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	procCallsTotal   *prometheus.CounterVec
	procCallDuration *prometheus.HistogramVec
}

// New crea los colectores y los registra junto con los de runtime y proceso.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de peticiones HTTP atendidas",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duración de las peticiones HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		procCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stored_procedure_calls_total",
				Help:      "Llamadas a procedimientos almacenados por resultado",
			},
			[]string{"procedure", "result"}, // result: ok | error
		),
		procCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stored_procedure_duration_seconds",
				Help:      "Duración de las llamadas a procedimientos almacenados",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"procedure"},
		),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.procCallsTotal,
		m.procCallDuration,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveHTTP registra una petición atendida. route es el patrón de la ruta (/api/roles/:id), no la URL.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveProcedure registra una llamada a un procedimiento almacenado.
func (m *Metrics) ObserveProcedure(proc string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.procCallsTotal.WithLabelValues(proc, result).Inc()
	m.procCallDuration.WithLabelValues(proc).Observe(d.Seconds())
}

// Handler devuelve el handler HTTP de exposición (/metrics).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expone el registry subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
