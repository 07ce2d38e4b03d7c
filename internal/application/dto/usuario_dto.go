package dto

import (
	"time"

	"github.com/jhoicas/dicri-api/internal/domain"
)

// CreateUsuarioRequest entrada para crear un usuario. El password viaja en claro hasta el
// procedimiento almacenado, que es quien lo hashea.
type CreateUsuarioRequest struct {
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
	FullName string `json:"FullName" validate:"required"`
	IdRol    int    `json:"IdRol" validate:"required"`
}

// Validate exige Username, Password, FullName e IdRol.
func (r CreateUsuarioRequest) Validate() error {
	if r.Username == "" || r.Password == "" || r.FullName == "" || r.IdRol == 0 {
		return domain.Validation("Username, Password, FullName e IdRol son requeridos")
	}
	return nil
}

// UpdateUsuarioRequest entrada para actualizar un usuario. El password no se modifica por aquí.
type UpdateUsuarioRequest struct {
	Username *string `json:"Username"`
	FullName *string `json:"FullName"`
	IdRol    *int    `json:"IdRol"`
	IsActive *bool   `json:"IsActive"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	IdUsuario int       `json:"IdUsuario"`
	Username  string    `json:"Username"`
	FullName  string    `json:"FullName"`
	IdRol     int       `json:"IdRol"`
	RoleName  string    `json:"RoleName"`
	IsActive  bool      `json:"IsActive"`
	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`
}

// UsuarioCreatedResponse respuesta 201 de POST /usuarios.
type UsuarioCreatedResponse struct {
	Message   string `json:"message"`
	IdUsuario int    `json:"IdUsuario"`
}

// LoginRequest entrada de POST /login.
type LoginRequest struct {
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

// Validate exige ambas credenciales.
func (r LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return domain.Validation("Username y Password son requeridos")
	}
	return nil
}

// LoginResponse salida del login: sin token ni sesión, solo el usuario autenticado.
type LoginResponse struct {
	Message string          `json:"message"`
	User    UsuarioResponse `json:"user"`
}
