package entity

import "time"

// Rol agrupa permisos de usuarios (Técnico, Coordinador, ...). El borrado es lógico (IsActive=false).
type Rol struct {
	ID          int
	RoleName    string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RolChanges valores de sp_actualizar_rol; nil conserva el valor actual.
type RolChanges struct {
	ID          int
	RoleName    *string
	Description *string
	IsActive    *bool
}
