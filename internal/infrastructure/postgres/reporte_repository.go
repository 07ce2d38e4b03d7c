package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de reportes. Todas son de solo lectura.
type ReporteRepo struct {
	gw *Gateway
}

// NewReporteRepository construye el repositorio de reportes.
func NewReporteRepository(gw *Gateway) *ReporteRepo {
	return &ReporteRepo{gw: gw}
}

func rangoParams(f entity.ReporteFiltro) []Param {
	return []Param{
		Timestamp("p_fecha_inicio", f.FechaInicio),
		Timestamp("p_fecha_fin", f.FechaFin),
	}
}

// Expedientes listado de expedientes con su total de indicios, filtrado por fecha de creación y estado.
func (r *ReporteRepo) Expedientes(ctx context.Context, f entity.ReporteFiltro) ([]entity.ReporteExpediente, error) {
	out := make([]entity.ReporteExpediente, 0)
	err := r.gw.Call(ctx, Call{
		Proc: "sp_reporte_expedientes",
		Columns: []string{
			"id_expediente", "file_number", "description", "state_name", "tecnico_registro",
			"coordinador_revision", "review_date", "total_indicios", "created_at",
		},
		Params: append(rangoParams(f), Int("p_id_estado", f.IDEstado)),
	}, func(row pgx.Rows) error {
		var e entity.ReporteExpediente
		if err := row.Scan(
			&e.IDExpediente, &e.FileNumber, &e.Description, &e.StateName, &e.TecnicoRegistro,
			&e.CoordinadorRevision, &e.ReviewDate, &e.TotalIndicios, &e.CreatedAt,
		); err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reporte expedientes: %w", err)
	}
	return out, nil
}

// Estadisticas envía sp_estadisticas_por_estado y sp_estadisticas_totales en un mismo batch.
func (r *ReporteRepo) Estadisticas(ctx context.Context, f entity.ReporteFiltro) ([]entity.EstadisticaEstado, *entity.EstadisticaTotales, error) {
	porEstado := make([]entity.EstadisticaEstado, 0)
	var totales *entity.EstadisticaTotales

	err := r.gw.CallBatch(ctx,
		BatchStep{
			Call: Call{
				Proc:    "sp_estadisticas_por_estado",
				Columns: []string{"id_estado", "state_name", "cantidad"},
				Params:  rangoParams(f),
			},
			Scan: func(row pgx.Rows) error {
				var e entity.EstadisticaEstado
				if err := row.Scan(&e.IDEstado, &e.StateName, &e.Cantidad); err != nil {
					return err
				}
				porEstado = append(porEstado, e)
				return nil
			},
		},
		BatchStep{
			Call: Call{
				Proc: "sp_estadisticas_totales",
				Columns: []string{
					"total_expedientes", "total_indicios", "promedio_indicios",
					"total_aprobados", "total_rechazados", "total_pendientes",
				},
				Params: rangoParams(f),
			},
			Scan: func(row pgx.Rows) error {
				var t entity.EstadisticaTotales
				if err := row.Scan(
					&t.TotalExpedientes, &t.TotalIndicios, &t.PromedioIndicios,
					&t.TotalAprobados, &t.TotalRechazados, &t.TotalPendientes,
				); err != nil {
					return err
				}
				totales = &t
				return nil
			},
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("estadisticas: %w", err)
	}
	return porEstado, totales, nil
}

// Tecnicos productividad por técnico activo.
func (r *ReporteRepo) Tecnicos(ctx context.Context) ([]entity.ReporteTecnico, error) {
	out := make([]entity.ReporteTecnico, 0)
	err := r.gw.Call(ctx, Call{
		Proc:    "sp_reporte_tecnicos",
		Columns: []string{"id_usuario", "full_name", "username", "total_expedientes", "total_indicios"},
	}, func(row pgx.Rows) error {
		var t entity.ReporteTecnico
		if err := row.Scan(&t.IDUsuario, &t.FullName, &t.Username, &t.TotalExpedientes, &t.TotalIndicios); err != nil {
			return err
		}
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reporte tecnicos: %w", err)
	}
	return out, nil
}

// Coordinadores revisiones por coordinador activo.
func (r *ReporteRepo) Coordinadores(ctx context.Context) ([]entity.ReporteCoordinador, error) {
	out := make([]entity.ReporteCoordinador, 0)
	err := r.gw.Call(ctx, Call{
		Proc: "sp_reporte_coordinadores",
		Columns: []string{
			"id_usuario", "full_name", "username", "total_revisados", "total_aprobados", "total_rechazados",
		},
	}, func(row pgx.Rows) error {
		var c entity.ReporteCoordinador
		if err := row.Scan(&c.IDUsuario, &c.FullName, &c.Username, &c.TotalRevisados, &c.TotalAprobados, &c.TotalRechazados); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reporte coordinadores: %w", err)
	}
	return out, nil
}
