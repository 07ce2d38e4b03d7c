package repository

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// RolRepository puerto de persistencia para roles (sp_*_rol).
type RolRepository interface {
	List(ctx context.Context) ([]*entity.Rol, error)
	GetByID(ctx context.Context, id int) (*entity.Rol, error)
	Create(ctx context.Context, rol *entity.Rol) (int, error)
	Update(ctx context.Context, changes entity.RolChanges) error
	// Delete desactiva el rol (borrado lógico).
	Delete(ctx context.Context, id int) error
}
