package dto

import (
	"time"

	"github.com/jhoicas/dicri-api/internal/domain"
)

// CreateRolRequest entrada para crear un rol.
type CreateRolRequest struct {
	RoleName    string  `json:"RoleName" validate:"required"`
	Description *string `json:"Description"`
}

// Validate exige RoleName.
func (r CreateRolRequest) Validate() error {
	if r.RoleName == "" {
		return domain.Validation("El nombre del rol es requerido")
	}
	return nil
}

// UpdateRolRequest entrada para actualizar un rol. Sin validación.
type UpdateRolRequest struct {
	RoleName    *string `json:"RoleName"`
	Description *string `json:"Description"`
	IsActive    *bool   `json:"IsActive"`
}

// RolResponse salida de un rol.
type RolResponse struct {
	IdRol       int       `json:"IdRol"`
	RoleName    string    `json:"RoleName"`
	Description *string   `json:"Description"`
	IsActive    bool      `json:"IsActive"`
	CreatedAt   time.Time `json:"CreatedAt"`
	UpdatedAt   time.Time `json:"UpdatedAt"`
}

// RolCreatedResponse respuesta 201 de POST /roles.
type RolCreatedResponse struct {
	Message string `json:"message"`
	IdRol   int    `json:"IdRol"`
}
