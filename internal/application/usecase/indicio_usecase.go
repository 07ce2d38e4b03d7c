package usecase

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// IndicioUseCase casos de uso CRUD para indicios.
type IndicioUseCase struct {
	repo repository.IndicioRepository
}

// NewIndicioUseCase construye el caso de uso.
func NewIndicioUseCase(repo repository.IndicioRepository) *IndicioUseCase {
	return &IndicioUseCase{repo: repo}
}

// List devuelve los indicios; con idExpediente != nil solo los de ese expediente.
// Lo usan tanto GET /indicios?idExpediente= como GET /expedientes/:idExpediente/indicios.
func (uc *IndicioUseCase) List(ctx context.Context, idExpediente *int) ([]dto.IndicioResponse, error) {
	list, err := uc.repo.List(ctx, idExpediente)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IndicioResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toIndicioResponse(i))
	}
	return out, nil
}

func (uc *IndicioUseCase) GetByID(ctx context.Context, id int) (*dto.IndicioResponse, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, domain.NotFound("Indicio no encontrado")
	}
	out := toIndicioResponse(i)
	return &out, nil
}

// Create registra un indicio en un expediente existente.
func (uc *IndicioUseCase) Create(ctx context.Context, in dto.CreateIndicioRequest) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, &entity.Indicio{
		IDExpediente:      in.IdExpediente,
		Description:       in.Description,
		Color:             in.Color,
		Size:              in.Size,
		Weight:            in.Weight,
		Location:          in.Location,
		IDTecnicoRegistro: in.IdTecnicoRegistro,
	})
}

func (uc *IndicioUseCase) Update(ctx context.Context, id int, in dto.UpdateIndicioRequest) error {
	return uc.repo.Update(ctx, entity.IndicioChanges{
		ID:          id,
		Description: in.Description,
		Color:       in.Color,
		Size:        in.Size,
		Weight:      in.Weight,
		Location:    in.Location,
	})
}

func (uc *IndicioUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toIndicioResponse(i *entity.Indicio) dto.IndicioResponse {
	return dto.IndicioResponse{
		IdIndicio:         i.ID,
		IdExpediente:      i.IDExpediente,
		FileNumber:        i.FileNumber,
		Description:       i.Description,
		Color:             i.Color,
		Size:              i.Size,
		Weight:            i.Weight,
		Location:          i.Location,
		IdTecnicoRegistro: i.IDTecnicoRegistro,
		TecnicoRegistro:   i.TecnicoRegistro,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}
