package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// ReportePDFGenerator puerto de salida: representación PDF del reporte de expedientes.
type ReportePDFGenerator interface {
	GenerateExpedientesPDF(ctx context.Context, rows []dto.ReporteExpedienteDTO, periodo string) ([]byte, error)
}

// ReporteUseCase reportes de solo lectura.
type ReporteUseCase struct {
	repo repository.ReporteRepository
	pdf  ReportePDFGenerator
}

// NewReporteUseCase construye el caso de uso. pdf puede ser nil si no se expone el reporte en PDF.
func NewReporteUseCase(repo repository.ReporteRepository, pdf ReportePDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, pdf: pdf}
}

const fechaLayout = "2006-01-02"

// parseFecha acepta YYYY-MM-DD o RFC 3339. Con finDeDia, una fecha sin hora cubre el día completo.
func parseFecha(param, s string, finDeDia bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(fechaLayout, s); err == nil {
		if finDeDia {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, domain.Validation(param + " inválida, use el formato YYYY-MM-DD")
	}
	return &t, nil
}

// Filtro traduce los parámetros de query al filtro del repositorio.
func (uc *ReporteUseCase) Filtro(q dto.ReporteQuery) (entity.ReporteFiltro, error) {
	var f entity.ReporteFiltro
	var err error
	if f.FechaInicio, err = parseFecha("fechaInicio", q.FechaInicio, false); err != nil {
		return f, err
	}
	if f.FechaFin, err = parseFecha("fechaFin", q.FechaFin, true); err != nil {
		return f, err
	}
	if q.Estado != "" {
		id, err := strconv.Atoi(q.Estado)
		if err != nil {
			return f, domain.Validation("estado debe ser numérico")
		}
		f.IDEstado = &id
	}
	return f, nil
}

// Expedientes listado de expedientes con total de indicios.
func (uc *ReporteUseCase) Expedientes(ctx context.Context, q dto.ReporteQuery) ([]dto.ReporteExpedienteDTO, error) {
	f, err := uc.Filtro(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.Expedientes(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReporteExpedienteDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReporteExpedienteDTO{
			IdExpediente:        r.IDExpediente,
			FileNumber:          r.FileNumber,
			Description:         r.Description,
			StateName:           r.StateName,
			TecnicoRegistro:     r.TecnicoRegistro,
			CoordinadorRevision: r.CoordinadorRevision,
			ReviewDate:          r.ReviewDate,
			TotalIndicios:       r.TotalIndicios,
			CreatedAt:           r.CreatedAt,
		})
	}
	return out, nil
}

// ExpedientesPDF mismo reporte que Expedientes, renderizado en PDF.
func (uc *ReporteUseCase) ExpedientesPDF(ctx context.Context, q dto.ReporteQuery) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("generador PDF no configurado")
	}
	rows, err := uc.Expedientes(ctx, q)
	if err != nil {
		return nil, err
	}
	b, err := uc.pdf.GenerateExpedientesPDF(ctx, rows, periodo(q))
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return b, nil
}

func periodo(q dto.ReporteQuery) string {
	switch {
	case q.FechaInicio != "" && q.FechaFin != "":
		return q.FechaInicio + " a " + q.FechaFin
	case q.FechaInicio != "":
		return "desde " + q.FechaInicio
	case q.FechaFin != "":
		return "hasta " + q.FechaFin
	default:
		return "todo el historial"
	}
}

// Estadisticas cantidad por estado y totales del período, obtenidos en un solo viaje a la base de datos.
func (uc *ReporteUseCase) Estadisticas(ctx context.Context, q dto.ReporteQuery) (*dto.EstadisticasResponse, error) {
	f, err := uc.Filtro(dto.ReporteQuery{FechaInicio: q.FechaInicio, FechaFin: q.FechaFin})
	if err != nil {
		return nil, err
	}
	porEstado, totales, err := uc.repo.Estadisticas(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.EstadisticasResponse{EstadisticasPorEstado: make([]dto.EstadisticaEstadoDTO, 0, len(porEstado))}
	for _, e := range porEstado {
		out.EstadisticasPorEstado = append(out.EstadisticasPorEstado, dto.EstadisticaEstadoDTO{
			IdEstado:  e.IDEstado,
			StateName: e.StateName,
			Cantidad:  e.Cantidad,
		})
	}
	if totales != nil {
		out.Totales = &dto.EstadisticaTotalesDTO{
			TotalExpedientes: totales.TotalExpedientes,
			TotalIndicios:    totales.TotalIndicios,
			PromedioIndicios: totales.PromedioIndicios,
			TotalAprobados:   totales.TotalAprobados,
			TotalRechazados:  totales.TotalRechazados,
			TotalPendientes:  totales.TotalPendientes,
		}
	}
	return out, nil
}

// Tecnicos productividad por técnico.
func (uc *ReporteUseCase) Tecnicos(ctx context.Context) ([]dto.ReporteTecnicoDTO, error) {
	rows, err := uc.repo.Tecnicos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReporteTecnicoDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReporteTecnicoDTO{
			IdUsuario:        r.IDUsuario,
			FullName:         r.FullName,
			Username:         r.Username,
			TotalExpedientes: r.TotalExpedientes,
			TotalIndicios:    r.TotalIndicios,
		})
	}
	return out, nil
}

// Coordinadores revisiones por coordinador.
func (uc *ReporteUseCase) Coordinadores(ctx context.Context) ([]dto.ReporteCoordinadorDTO, error) {
	rows, err := uc.repo.Coordinadores(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReporteCoordinadorDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReporteCoordinadorDTO{
			IdUsuario:       r.IDUsuario,
			FullName:        r.FullName,
			Username:        r.Username,
			TotalRevisados:  r.TotalRevisados,
			TotalAprobados:  r.TotalAprobados,
			TotalRechazados: r.TotalRechazados,
		})
	}
	return out, nil
}
