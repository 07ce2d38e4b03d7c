package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrEstadoNoConfigurado = errors.New("estado de flujo no configurado")
)

// Error asocia un mensaje legible para el cliente a uno de los errores de dominio.
// errors.Is(err, domain.ErrNotFound) sigue funcionando gracias a Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Validation construye un error de entrada inválida con el mensaje dado.
func Validation(msg string) error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

// NotFound construye un error de recurso inexistente con el mensaje dado.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Unauthorized construye un error de credenciales inválidas.
func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

// EstadoNoConfigurado indica que el estado de flujo con ese nombre no existe entre los estados activos.
func EstadoNoConfigurado(stateName string) error {
	return &Error{Kind: ErrEstadoNoConfigurado, Message: "Estado " + stateName + " no encontrado en el sistema"}
}
