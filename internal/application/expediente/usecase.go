// Package expediente casos de uso de expedientes: CRUD y el flujo de revisión
// Registrando -> EnRevision -> Aprobado | Rechazado.
package expediente

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

const msgNoEncontrado = "Expediente no encontrado"

// UseCase casos de uso CRUD para expedientes.
type UseCase struct {
	repo repository.ExpedienteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ExpedienteRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve los expedientes, más recientes primero.
func (uc *UseCase) List(ctx context.Context) ([]dto.ExpedienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpedienteResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpedienteResponse(e))
	}
	return out, nil
}

// GetByID obtiene un expediente; domain.ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id int) (*dto.ExpedienteResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound(msgNoEncontrado)
	}
	out := toExpedienteResponse(e)
	return &out, nil
}

// Create registra el expediente y devuelve su ID.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateExpedienteRequest) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, &entity.Expediente{
		FileNumber:        in.FileNumber,
		Description:       in.Description,
		IDTecnicoRegistro: in.IdTecnicoRegistro,
		IDEstado:          in.IdEstado,
	})
}

// Update reescribe el expediente con los valores recibidos.
func (uc *UseCase) Update(ctx context.Context, id int, in dto.UpdateExpedienteRequest) error {
	return uc.repo.Update(ctx, entity.ExpedienteChanges{
		ID:                    id,
		FileNumber:            in.FileNumber,
		Description:           in.Description,
		IDEstado:              in.IdEstado,
		Observaciones:         in.ObservacionesExpediente,
		IDCoordinadorRevision: in.IdCoordinadorRevision,
		ReviewDate:            in.ReviewDate,
	})
}

// Delete elimina el expediente junto con sus indicios.
func (uc *UseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toExpedienteResponse(e *entity.Expediente) dto.ExpedienteResponse {
	return dto.ExpedienteResponse{
		IdExpediente:            e.ID,
		FileNumber:              e.FileNumber,
		Description:             e.Description,
		IdTecnicoRegistro:       e.IDTecnicoRegistro,
		TecnicoRegistro:         e.TecnicoRegistro,
		IdEstado:                e.IDEstado,
		StateName:               e.StateName,
		ObservacionesExpediente: e.Observaciones,
		IdCoordinadorRevision:   e.IDCoordinadorRevision,
		CoordinadorRevision:     e.CoordinadorRevision,
		ReviewDate:              e.ReviewDate,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}
