package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporteRepo struct {
	filtro entity.ReporteFiltro
	rows   []entity.ReporteExpediente
	err    error
}

func (f *fakeReporteRepo) Expedientes(_ context.Context, filtro entity.ReporteFiltro) ([]entity.ReporteExpediente, error) {
	f.filtro = filtro
	return f.rows, f.err
}

func (f *fakeReporteRepo) Estadisticas(_ context.Context, filtro entity.ReporteFiltro) ([]entity.EstadisticaEstado, *entity.EstadisticaTotales, error) {
	f.filtro = filtro
	return []entity.EstadisticaEstado{{IDEstado: 1, StateName: "Registrando", Cantidad: 2}},
		&entity.EstadisticaTotales{TotalExpedientes: 2, TotalIndicios: 3, PromedioIndicios: decimal.RequireFromString("1.50")},
		f.err
}

func (f *fakeReporteRepo) Tecnicos(context.Context) ([]entity.ReporteTecnico, error) {
	return nil, f.err
}

func (f *fakeReporteRepo) Coordinadores(context.Context) ([]entity.ReporteCoordinador, error) {
	return nil, f.err
}

type fakePDF struct {
	rows    []dto.ReporteExpedienteDTO
	periodo string
}

func (p *fakePDF) GenerateExpedientesPDF(_ context.Context, rows []dto.ReporteExpedienteDTO, periodo string) ([]byte, error) {
	p.rows, p.periodo = rows, periodo
	return []byte("%PDF-1.3"), nil
}

func TestReporteFiltro_FechasYEstado(t *testing.T) {
	uc := NewReporteUseCase(&fakeReporteRepo{}, nil)

	f, err := uc.Filtro(dto.ReporteQuery{FechaInicio: "2024-01-01", FechaFin: "2024-01-31", Estado: "3"})
	require.NoError(t, err)
	require.NotNil(t, f.FechaInicio)
	require.NotNil(t, f.FechaFin)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.FechaInicio)
	// fechaFin sin hora incluye todo el día
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), *f.FechaFin)
	require.NotNil(t, f.IDEstado)
	assert.Equal(t, 3, *f.IDEstado)
}

func TestReporteFiltro_RFC3339(t *testing.T) {
	uc := NewReporteUseCase(&fakeReporteRepo{}, nil)

	f, err := uc.Filtro(dto.ReporteQuery{FechaFin: "2024-03-10T15:04:05Z"})
	require.NoError(t, err)
	assert.Nil(t, f.FechaInicio)
	assert.Equal(t, time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC), *f.FechaFin)
}

func TestReporteFiltro_Invalido(t *testing.T) {
	uc := NewReporteUseCase(&fakeReporteRepo{}, nil)

	_, err := uc.Filtro(dto.ReporteQuery{FechaInicio: "01/02/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "fechaInicio")

	_, err = uc.Filtro(dto.ReporteQuery{Estado: "aprobado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReporteExpedientes_NoLlamaRepoConFiltroInvalido(t *testing.T) {
	repo := &fakeReporteRepo{err: errors.New("no debería llamarse")}
	uc := NewReporteUseCase(repo, nil)

	_, err := uc.Expedientes(context.Background(), dto.ReporteQuery{Estado: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReporteEstadisticas_IgnoraEstado(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := NewReporteUseCase(repo, nil)

	out, err := uc.Estadisticas(context.Background(), dto.ReporteQuery{Estado: "2"})
	require.NoError(t, err)
	assert.Nil(t, repo.filtro.IDEstado)
	require.Len(t, out.EstadisticasPorEstado, 1)
	require.NotNil(t, out.Totales)
	assert.Equal(t, "1.5", out.Totales.PromedioIndicios.String())
}

func TestReporteExpedientesPDF(t *testing.T) {
	repo := &fakeReporteRepo{rows: []entity.ReporteExpediente{{IDExpediente: 1, FileNumber: "EXP-2024-001", TotalIndicios: 2}}}
	gen := &fakePDF{}
	uc := NewReporteUseCase(repo, gen)

	b, err := uc.ExpedientesPDF(context.Background(), dto.ReporteQuery{FechaInicio: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(b))
	require.Len(t, gen.rows, 1)
	assert.Equal(t, "EXP-2024-001", gen.rows[0].FileNumber)
	assert.Equal(t, "desde 2024-01-01", gen.periodo)
}
