package usecase

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// RolUseCase casos de uso CRUD para roles.
type RolUseCase struct {
	repo repository.RolRepository
}

// NewRolUseCase construye el caso de uso.
func NewRolUseCase(repo repository.RolRepository) *RolUseCase {
	return &RolUseCase{repo: repo}
}

// List devuelve todos los roles.
func (uc *RolUseCase) List(ctx context.Context) ([]dto.RolResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRolResponse(r))
	}
	return out, nil
}

// GetByID obtiene un rol; domain.ErrNotFound si no existe.
func (uc *RolUseCase) GetByID(ctx context.Context, id int) (*dto.RolResponse, error) {
	rol, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, domain.NotFound("Rol no encontrado")
	}
	out := toRolResponse(rol)
	return &out, nil
}

// Create crea un rol activo y devuelve su ID.
func (uc *RolUseCase) Create(ctx context.Context, in dto.CreateRolRequest) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, &entity.Rol{RoleName: in.RoleName, Description: in.Description, IsActive: true})
}

// Update actualiza un rol.
func (uc *RolUseCase) Update(ctx context.Context, id int, in dto.UpdateRolRequest) error {
	return uc.repo.Update(ctx, entity.RolChanges{
		ID:          id,
		RoleName:    in.RoleName,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
}

// Delete desactiva un rol.
func (uc *RolUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toRolResponse(r *entity.Rol) dto.RolResponse {
	return dto.RolResponse{
		IdRol:       r.ID,
		RoleName:    r.RoleName,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
