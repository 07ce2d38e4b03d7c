package usecase

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD para usuarios. El password nunca sale en las respuestas.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devuelve todos los usuarios con su rol.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario; domain.ErrNotFound si no existe.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	out := toUsuarioResponse(u)
	return &out, nil
}

// Create registra el usuario; el hash del password lo calcula el procedimiento almacenado.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, &entity.Usuario{
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
		IDRol:    in.IdRol,
		IsActive: true,
	})
}

// Update actualiza datos del usuario (no el password).
func (uc *UsuarioUseCase) Update(ctx context.Context, id int, in dto.UpdateUsuarioRequest) error {
	return uc.repo.Update(ctx, entity.UsuarioChanges{
		ID:       id,
		Username: in.Username,
		FullName: in.FullName,
		IDRol:    in.IdRol,
		IsActive: in.IsActive,
	})
}

// Delete desactiva el usuario.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		IdUsuario: u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		IdRol:     u.IDRol,
		RoleName:  u.RoleName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
