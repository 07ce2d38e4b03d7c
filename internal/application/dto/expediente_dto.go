package dto

import (
	"time"

	"github.com/jhoicas/dicri-api/internal/domain"
)

// CreateExpedienteRequest entrada para registrar un expediente.
type CreateExpedienteRequest struct {
	FileNumber        string `json:"FileNumber" validate:"required"`
	Description       string `json:"Description" validate:"required"`
	IdTecnicoRegistro int    `json:"IdTecnicoRegistro" validate:"required"`
	IdEstado          int    `json:"IdEstado" validate:"required"`
}

// Validate exige los cuatro campos.
func (r CreateExpedienteRequest) Validate() error {
	if r.FileNumber == "" || r.Description == "" || r.IdTecnicoRegistro == 0 || r.IdEstado == 0 {
		return domain.Validation("FileNumber, Description, IdTecnicoRegistro e IdEstado son requeridos")
	}
	return nil
}

// UpdateExpedienteRequest entrada de PUT /expedientes/:id. Los campos opcionales ausentes se guardan como NULL.
type UpdateExpedienteRequest struct {
	FileNumber              *string    `json:"FileNumber"`
	Description             *string    `json:"Description"`
	IdEstado                *int       `json:"IdEstado"`
	ObservacionesExpediente *string    `json:"ObservacionesExpediente"`
	IdCoordinadorRevision   *int       `json:"IdCoordinadorRevision"`
	ReviewDate              *time.Time `json:"ReviewDate"`
}

// AprobarExpedienteRequest entrada de POST /expedientes/:id/aprobar.
type AprobarExpedienteRequest struct {
	IdCoordinadorRevision int `json:"IdCoordinadorRevision" validate:"required"`
}

// Validate exige el coordinador.
func (r AprobarExpedienteRequest) Validate() error {
	if r.IdCoordinadorRevision == 0 {
		return domain.Validation("IdCoordinadorRevision es requerido")
	}
	return nil
}

// RechazarExpedienteRequest entrada de POST /expedientes/:id/rechazar.
type RechazarExpedienteRequest struct {
	IdCoordinadorRevision   int    `json:"IdCoordinadorRevision" validate:"required"`
	ObservacionesExpediente string `json:"ObservacionesExpediente" validate:"required"`
}

// Validate exige coordinador y observaciones.
func (r RechazarExpedienteRequest) Validate() error {
	if r.IdCoordinadorRevision == 0 || r.ObservacionesExpediente == "" {
		return domain.Validation("IdCoordinadorRevision y ObservacionesExpediente son requeridos")
	}
	return nil
}

// ExpedienteResponse salida de un expediente con los nombres resueltos por la base de datos.
type ExpedienteResponse struct {
	IdExpediente            int        `json:"IdExpediente"`
	FileNumber              string     `json:"FileNumber"`
	Description             string     `json:"Description"`
	IdTecnicoRegistro       int        `json:"IdTecnicoRegistro"`
	TecnicoRegistro         *string    `json:"TecnicoRegistro"`
	IdEstado                int        `json:"IdEstado"`
	StateName               string     `json:"StateName"`
	ObservacionesExpediente *string    `json:"ObservacionesExpediente"`
	IdCoordinadorRevision   *int       `json:"IdCoordinadorRevision"`
	CoordinadorRevision     *string    `json:"CoordinadorRevision"`
	ReviewDate              *time.Time `json:"ReviewDate"`
	CreatedAt               time.Time  `json:"CreatedAt"`
	UpdatedAt               time.Time  `json:"UpdatedAt"`
}

// ExpedienteCreatedResponse respuesta 201 de POST /expedientes.
type ExpedienteCreatedResponse struct {
	Message      string `json:"message"`
	IdExpediente int    `json:"IdExpediente"`
}
