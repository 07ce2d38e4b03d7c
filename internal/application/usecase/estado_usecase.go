package usecase

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// EstadoUseCase casos de uso CRUD para los estados de expediente.
type EstadoUseCase struct {
	repo repository.EstadoRepository
}

// NewEstadoUseCase construye el caso de uso.
func NewEstadoUseCase(repo repository.EstadoRepository) *EstadoUseCase {
	return &EstadoUseCase{repo: repo}
}

func (uc *EstadoUseCase) List(ctx context.Context) ([]dto.EstadoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EstadoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEstadoResponse(e))
	}
	return out, nil
}

func (uc *EstadoUseCase) GetByID(ctx context.Context, id int) (*dto.EstadoResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("Estado no encontrado")
	}
	out := toEstadoResponse(e)
	return &out, nil
}

func (uc *EstadoUseCase) Create(ctx context.Context, in dto.CreateEstadoRequest) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, &entity.Estado{StateName: in.StateName, Description: in.Description, IsActive: true})
}

func (uc *EstadoUseCase) Update(ctx context.Context, id int, in dto.UpdateEstadoRequest) error {
	return uc.repo.Update(ctx, entity.EstadoChanges{
		ID:          id,
		StateName:   in.StateName,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
}

func (uc *EstadoUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toEstadoResponse(e *entity.Estado) dto.EstadoResponse {
	return dto.EstadoResponse{
		IdEstado:    e.ID,
		StateName:   e.StateName,
		Description: e.Description,
		IsActive:    e.IsActive,
	}
}
