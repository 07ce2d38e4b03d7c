package repository

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// ReporteRepository consultas de solo lectura para reportes (sp_reporte_*, sp_estadisticas_*).
type ReporteRepository interface {
	Expedientes(ctx context.Context, filtro entity.ReporteFiltro) ([]entity.ReporteExpediente, error)

	// Estadisticas obtiene ambos record sets (por estado y totales) en un solo viaje a la base de datos.
	Estadisticas(ctx context.Context, filtro entity.ReporteFiltro) ([]entity.EstadisticaEstado, *entity.EstadisticaTotales, error)

	Tecnicos(ctx context.Context) ([]entity.ReporteTecnico, error)
	Coordinadores(ctx context.Context) ([]entity.ReporteCoordinador, error)
}
