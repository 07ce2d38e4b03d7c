package entity

import "time"

// Indicio es un elemento de evidencia física catalogado dentro de un expediente.
type Indicio struct {
	ID                int
	IDExpediente      int
	FileNumber        string // número del expediente (join)
	Description       string
	Color             *string
	Size              *string
	Weight            *string
	Location          string
	IDTecnicoRegistro int
	TecnicoRegistro   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IndicioChanges valores de sp_actualizar_indicio. Description y Location nil conservan el valor
// actual; Color, Size y Weight nil se limpian.
type IndicioChanges struct {
	ID          int
	Description *string
	Color       *string
	Size        *string
	Weight      *string
	Location    *string
}
