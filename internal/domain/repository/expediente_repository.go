package repository

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// ExpedienteRepository puerto de persistencia para expedientes.
type ExpedienteRepository interface {
	List(ctx context.Context) ([]*entity.Expediente, error)
	GetByID(ctx context.Context, id int) (*entity.Expediente, error)
	Create(ctx context.Context, exp *entity.Expediente) (int, error)
	Update(ctx context.Context, changes entity.ExpedienteChanges) error
	// Delete elimina el expediente y, en cascada, sus indicios.
	Delete(ctx context.Context, id int) error
}
