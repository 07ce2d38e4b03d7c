package entity

import "time"

// Expediente es el registro de una investigación que avanza por los estados de revisión.
type Expediente struct {
	ID                    int
	FileNumber            string
	Description           string
	IDTecnicoRegistro     int
	TecnicoRegistro       *string // nombre completo del técnico (join)
	IDEstado              int
	StateName             string // nombre del estado actual (join)
	Observaciones         *string
	IDCoordinadorRevision *int
	CoordinadorRevision   *string // nombre completo del coordinador (join)
	ReviewDate            *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ExpedienteChanges son los valores que recibe sp_actualizar_expediente.
// Los campos nil conservan el valor actual en columnas obligatorias y limpian las opcionales.
type ExpedienteChanges struct {
	ID                    int
	FileNumber            *string
	Description           *string
	IDEstado              *int
	Observaciones         *string
	IDCoordinadorRevision *int
	ReviewDate            *time.Time
}
