package repository

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// IndicioRepository puerto de persistencia para indicios.
type IndicioRepository interface {
	// List devuelve todos los indicios; si idExpediente no es nil, solo los de ese expediente.
	List(ctx context.Context, idExpediente *int) ([]*entity.Indicio, error)
	GetByID(ctx context.Context, id int) (*entity.Indicio, error)
	Create(ctx context.Context, indicio *entity.Indicio) (int, error)
	Update(ctx context.Context, changes entity.IndicioChanges) error
	Delete(ctx context.Context, id int) error
}
