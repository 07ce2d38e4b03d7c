package dto

import (
	"time"

	"github.com/jhoicas/dicri-api/internal/domain"
)

// CreateIndicioRequest entrada para registrar un indicio dentro de un expediente.
type CreateIndicioRequest struct {
	IdExpediente      int     `json:"IdExpediente" validate:"required"`
	Description       string  `json:"Description" validate:"required"`
	Color             *string `json:"Color"`
	Size              *string `json:"Size"`
	Weight            *string `json:"Weight"`
	Location          string  `json:"Location" validate:"required"`
	IdTecnicoRegistro int     `json:"IdTecnicoRegistro" validate:"required"`
}

// Validate exige expediente, descripción, ubicación y técnico.
func (r CreateIndicioRequest) Validate() error {
	if r.IdExpediente == 0 || r.Description == "" || r.Location == "" || r.IdTecnicoRegistro == 0 {
		return domain.Validation("IdExpediente, Description, Location e IdTecnicoRegistro son requeridos")
	}
	return nil
}

// UpdateIndicioRequest entrada de PUT /indicios/:id.
type UpdateIndicioRequest struct {
	Description *string `json:"Description"`
	Color       *string `json:"Color"`
	Size        *string `json:"Size"`
	Weight      *string `json:"Weight"`
	Location    *string `json:"Location"`
}

// IndicioResponse salida de un indicio.
type IndicioResponse struct {
	IdIndicio         int       `json:"IdIndicio"`
	IdExpediente      int       `json:"IdExpediente"`
	FileNumber        string    `json:"FileNumber"`
	Description       string    `json:"Description"`
	Color             *string   `json:"Color"`
	Size              *string   `json:"Size"`
	Weight            *string   `json:"Weight"`
	Location          string    `json:"Location"`
	IdTecnicoRegistro int       `json:"IdTecnicoRegistro"`
	TecnicoRegistro   *string   `json:"TecnicoRegistro"`
	CreatedAt         time.Time `json:"CreatedAt"`
	UpdatedAt         time.Time `json:"UpdatedAt"`
}

// IndicioCreatedResponse respuesta 201 de POST /indicios.
type IndicioCreatedResponse struct {
	Message   string `json:"message"`
	IdIndicio int    `json:"IdIndicio"`
}
