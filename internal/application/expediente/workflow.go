package expediente

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// WorkflowUseCase transiciones del flujo de revisión. El ID de cada estado destino se resuelve
// por nombre en el momento de la transición.
//
// Cada transición es lectura + escritura sin bloqueo de fila: dos transiciones concurrentes
// sobre el mismo expediente pueden pisarse (gana la última escritura).
type WorkflowUseCase struct {
	store   ExpedienteStore
	estados EstadoLookup
	now     func() time.Time
}

// NewWorkflowUseCase construye el caso de uso. now nil usa time.Now.
func NewWorkflowUseCase(store ExpedienteStore, estados EstadoLookup, now func() time.Time) *WorkflowUseCase {
	if now == nil {
		now = time.Now
	}
	return &WorkflowUseCase{store: store, estados: estados, now: now}
}

// EnviarRevision pasa el expediente a EnRevision sin tocar el resto de campos.
func (uc *WorkflowUseCase) EnviarRevision(ctx context.Context, id int) error {
	exp, err := uc.cargar(ctx, id)
	if err != nil {
		return err
	}
	estado, err := uc.resolver(ctx, entity.EstadoEnRevision)
	if err != nil {
		return err
	}
	changes := conservar(exp)
	changes.IDEstado = &estado.ID
	return uc.store.Update(ctx, changes)
}

// Aprobar pasa el expediente a Aprobado registrando coordinador y fecha de revisión.
func (uc *WorkflowUseCase) Aprobar(ctx context.Context, id int, in dto.AprobarExpedienteRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	exp, err := uc.cargar(ctx, id)
	if err != nil {
		return err
	}
	estado, err := uc.resolver(ctx, entity.EstadoAprobado)
	if err != nil {
		return err
	}
	now := uc.now()
	changes := conservar(exp)
	changes.IDEstado = &estado.ID
	changes.IDCoordinadorRevision = &in.IdCoordinadorRevision
	changes.ReviewDate = &now
	return uc.store.Update(ctx, changes)
}

// Rechazar pasa el expediente a Rechazado con coordinador, observaciones y fecha de revisión.
func (uc *WorkflowUseCase) Rechazar(ctx context.Context, id int, in dto.RechazarExpedienteRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	exp, err := uc.cargar(ctx, id)
	if err != nil {
		return err
	}
	estado, err := uc.resolver(ctx, entity.EstadoRechazado)
	if err != nil {
		return err
	}
	now := uc.now()
	changes := conservar(exp)
	changes.IDEstado = &estado.ID
	changes.IDCoordinadorRevision = &in.IdCoordinadorRevision
	changes.Observaciones = &in.ObservacionesExpediente
	changes.ReviewDate = &now
	return uc.store.Update(ctx, changes)
}

func (uc *WorkflowUseCase) cargar(ctx context.Context, id int) (*entity.Expediente, error) {
	exp, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, domain.NotFound(msgNoEncontrado)
	}
	return exp, nil
}

func (uc *WorkflowUseCase) resolver(ctx context.Context, name string) (*entity.Estado, error) {
	estado, err := uc.estados.FindActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolver estado %s: %w", name, err)
	}
	if estado == nil {
		return nil, domain.EstadoNoConfigurado(name)
	}
	return estado, nil
}

// conservar arma los cambios que reescriben el expediente con sus valores actuales.
func conservar(exp *entity.Expediente) entity.ExpedienteChanges {
	return entity.ExpedienteChanges{
		ID:                    exp.ID,
		FileNumber:            &exp.FileNumber,
		Description:           &exp.Description,
		IDEstado:              &exp.IDEstado,
		Observaciones:         exp.Observaciones,
		IDCoordinadorRevision: exp.IDCoordinadorRevision,
		ReviewDate:            exp.ReviewDate,
	}
}
