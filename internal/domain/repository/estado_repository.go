package repository

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// EstadoRepository puerto de persistencia para los estados de expediente.
type EstadoRepository interface {
	List(ctx context.Context) ([]*entity.Estado, error)
	GetByID(ctx context.Context, id int) (*entity.Estado, error)
	// FindActiveByName devuelve el estado activo con ese nombre o nil si no existe.
	FindActiveByName(ctx context.Context, name string) (*entity.Estado, error)
	Create(ctx context.Context, estado *entity.Estado) (int, error)
	Update(ctx context.Context, changes entity.EstadoChanges) error
	// Delete desactiva el estado (borrado lógico).
	Delete(ctx context.Context, id int) error
}
