package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReporteFiltro parámetros opcionales de los reportes de expedientes.
type ReporteFiltro struct {
	FechaInicio *time.Time
	FechaFin    *time.Time
	IDEstado    *int
}

// ReporteExpediente fila de sp_reporte_expedientes.
type ReporteExpediente struct {
	IDExpediente        int
	FileNumber          string
	Description         string
	StateName           string
	TecnicoRegistro     string
	CoordinadorRevision *string
	ReviewDate          *time.Time
	TotalIndicios       int
	CreatedAt           time.Time
}

// EstadisticaEstado primer record set de las estadísticas: cantidad de expedientes por estado.
type EstadisticaEstado struct {
	IDEstado  int
	StateName string
	Cantidad  int
}

// EstadisticaTotales segundo record set de las estadísticas.
type EstadisticaTotales struct {
	TotalExpedientes int
	TotalIndicios    int
	PromedioIndicios decimal.Decimal // NUMERIC(10,2) en la base de datos
	TotalAprobados   int
	TotalRechazados  int
	TotalPendientes  int
}

// ReporteTecnico productividad de un técnico.
type ReporteTecnico struct {
	IDUsuario        int
	FullName         string
	Username         string
	TotalExpedientes int
	TotalIndicios    int
}

// ReporteCoordinador revisiones realizadas por un coordinador.
type ReporteCoordinador struct {
	IDUsuario       int
	FullName        string
	Username        string
	TotalRevisados  int
	TotalAprobados  int
	TotalRechazados int
}
