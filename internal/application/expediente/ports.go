package expediente

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// ExpedienteStore lectura y reescritura de un expediente. Lo implementa postgres.ExpedienteRepo.
type ExpedienteStore interface {
	GetByID(ctx context.Context, id int) (*entity.Expediente, error)
	Update(ctx context.Context, changes entity.ExpedienteChanges) error
}

// EstadoLookup resuelve un estado activo por nombre; nil si no existe. Lo implementa postgres.EstadoRepo.
type EstadoLookup interface {
	FindActiveByName(ctx context.Context, name string) (*entity.Estado, error)
}
