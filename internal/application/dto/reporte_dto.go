package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReporteQuery parámetros de query de los reportes de expedientes (texto crudo, se parsea en el use case).
type ReporteQuery struct {
	FechaInicio string `query:"fechaInicio"`
	FechaFin    string `query:"fechaFin"`
	Estado      string `query:"estado"`
}

// ReporteExpedienteDTO fila del reporte de expedientes.
type ReporteExpedienteDTO struct {
	IdExpediente        int        `json:"IdExpediente"`
	FileNumber          string     `json:"FileNumber"`
	Description         string     `json:"Description"`
	StateName           string     `json:"StateName"`
	TecnicoRegistro     string     `json:"TecnicoRegistro"`
	CoordinadorRevision *string    `json:"CoordinadorRevision"`
	ReviewDate          *time.Time `json:"ReviewDate"`
	TotalIndicios       int        `json:"TotalIndicios"`
	CreatedAt           time.Time  `json:"CreatedAt"`
}

// EstadisticaEstadoDTO cantidad de expedientes en un estado.
type EstadisticaEstadoDTO struct {
	IdEstado  int    `json:"IdEstado"`
	StateName string `json:"StateName"`
	Cantidad  int    `json:"Cantidad"`
}

// EstadisticaTotalesDTO totales del período.
type EstadisticaTotalesDTO struct {
	TotalExpedientes int             `json:"TotalExpedientes"`
	TotalIndicios    int             `json:"TotalIndicios"`
	PromedioIndicios decimal.Decimal `json:"PromedioIndicios"`
	TotalAprobados   int             `json:"TotalAprobados"`
	TotalRechazados  int             `json:"TotalRechazados"`
	TotalPendientes  int             `json:"TotalPendientes"`
}

// EstadisticasResponse salida de GET /reportes/estadisticas.
type EstadisticasResponse struct {
	EstadisticasPorEstado []EstadisticaEstadoDTO `json:"estadisticasPorEstado"`
	Totales               *EstadisticaTotalesDTO `json:"totales"`
}

// ReporteTecnicoDTO productividad de un técnico.
type ReporteTecnicoDTO struct {
	IdUsuario        int    `json:"IdUsuario"`
	FullName         string `json:"FullName"`
	Username         string `json:"Username"`
	TotalExpedientes int    `json:"TotalExpedientes"`
	TotalIndicios    int    `json:"TotalIndicios"`
}

// ReporteCoordinadorDTO revisiones de un coordinador.
type ReporteCoordinadorDTO struct {
	IdUsuario       int    `json:"IdUsuario"`
	FullName        string `json:"FullName"`
	Username        string `json:"Username"`
	TotalRevisados  int    `json:"TotalRevisados"`
	TotalAprobados  int    `json:"TotalAprobados"`
	TotalRechazados int    `json:"TotalRechazados"`
}
