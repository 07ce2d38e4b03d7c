package entity

import "time"

// Usuario representa un técnico o coordinador de la DICRI.
type Usuario struct {
	ID        int
	Username  string
	Password  string // opaco; lo gestiona el procedimiento almacenado, nunca se expone en la API
	FullName  string
	IDRol     int
	RoleName  string // nombre del rol (join)
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UsuarioChanges valores de sp_actualizar_usuario; nil conserva el valor actual.
type UsuarioChanges struct {
	ID       int
	Username *string
	FullName *string
	IDRol    *int
	IsActive *bool
}
