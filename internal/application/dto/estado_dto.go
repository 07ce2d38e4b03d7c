package dto

import "github.com/jhoicas/dicri-api/internal/domain"

// CreateEstadoRequest entrada para crear un estado de expediente.
type CreateEstadoRequest struct {
	StateName   string  `json:"StateName" validate:"required"`
	Description *string `json:"Description"`
}

// Validate exige StateName.
func (r CreateEstadoRequest) Validate() error {
	if r.StateName == "" {
		return domain.Validation("El nombre del estado es requerido")
	}
	return nil
}

// UpdateEstadoRequest entrada para actualizar un estado.
type UpdateEstadoRequest struct {
	StateName   *string `json:"StateName"`
	Description *string `json:"Description"`
	IsActive    *bool   `json:"IsActive"`
}

// EstadoResponse salida de un estado.
type EstadoResponse struct {
	IdEstado    int     `json:"IdEstado"`
	StateName   string  `json:"StateName"`
	Description *string `json:"Description"`
	IsActive    bool    `json:"IsActive"`
}

// EstadoCreatedResponse respuesta 201 de POST /estados.
type EstadoCreatedResponse struct {
	Message  string `json:"message"`
	IdEstado int    `json:"IdEstado"`
}
