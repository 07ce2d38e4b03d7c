package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

var _ repository.ExpedienteRepository = (*ExpedienteRepo)(nil)

var expedienteColumns = []string{
	"id_expediente", "file_number", "description",
	"id_tecnico_registro", "tecnico_registro",
	"id_estado", "state_name",
	"observaciones_expediente",
	"id_coordinador_revision", "coordinador_revision",
	"review_date", "created_at", "updated_at",
}

// ExpedienteRepo implementación del puerto ExpedienteRepository.
type ExpedienteRepo struct {
	gw *Gateway
}

// NewExpedienteRepository construye el adaptador de persistencia para expedientes.
func NewExpedienteRepository(gw *Gateway) *ExpedienteRepo {
	return &ExpedienteRepo{gw: gw}
}

func scanExpediente(row pgx.Rows) (*entity.Expediente, error) {
	var e entity.Expediente
	err := row.Scan(
		&e.ID, &e.FileNumber, &e.Description,
		&e.IDTecnicoRegistro, &e.TecnicoRegistro,
		&e.IDEstado, &e.StateName,
		&e.Observaciones,
		&e.IDCoordinadorRevision, &e.CoordinadorRevision,
		&e.ReviewDate, &e.CreatedAt, &e.UpdatedAt,
	)
	return &e, err
}

// List devuelve los expedientes, más recientes primero.
func (r *ExpedienteRepo) List(ctx context.Context) ([]*entity.Expediente, error) {
	return r.consultar(ctx, nil)
}

// GetByID obtiene un expediente por ID con los nombres de estado, técnico y coordinador; nil si no existe.
func (r *ExpedienteRepo) GetByID(ctx context.Context, id int) (*entity.Expediente, error) {
	list, err := r.consultar(ctx, &id)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *ExpedienteRepo) consultar(ctx context.Context, id *int) ([]*entity.Expediente, error) {
	list := make([]*entity.Expediente, 0)
	err := r.gw.Call(ctx, Call{
		Proc:    "sp_consultar_expedientes",
		Columns: expedienteColumns,
		Params:  []Param{Int("p_id_expediente", id)},
	}, func(row pgx.Rows) error {
		e, err := scanExpediente(row)
		if err != nil {
			return err
		}
		list = append(list, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("consultar expedientes: %w", err)
	}
	return list, nil
}

// Create inserta el expediente y devuelve el ID generado.
func (r *ExpedienteRepo) Create(ctx context.Context, exp *entity.Expediente) (int, error) {
	id, err := insertReturningID(ctx, r.gw, Call{
		Proc:    "sp_insertar_expediente",
		Columns: []string{"id_expediente"},
		Params: []Param{
			Text("p_file_number", exp.FileNumber),
			Text("p_description", exp.Description),
			Int("p_id_tecnico_registro", exp.IDTecnicoRegistro),
			Int("p_id_estado", exp.IDEstado),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("insertar expediente: %w", err)
	}
	return id, nil
}

// Update reescribe el expediente. Observaciones, coordinador y fecha de revisión se asignan tal cual
// (nil los limpia); el resto conserva el valor actual cuando llega nil.
func (r *ExpedienteRepo) Update(ctx context.Context, changes entity.ExpedienteChanges) error {
	err := r.gw.Exec(ctx, Call{
		Proc: "sp_actualizar_expediente",
		Params: []Param{
			Int("p_id_expediente", changes.ID),
			Text("p_file_number", changes.FileNumber),
			Text("p_description", changes.Description),
			Int("p_id_estado", changes.IDEstado),
			Text("p_observaciones_expediente", changes.Observaciones),
			Int("p_id_coordinador_revision", changes.IDCoordinadorRevision),
			Timestamp("p_review_date", changes.ReviewDate),
		},
	})
	if err != nil {
		return fmt.Errorf("actualizar expediente: %w", err)
	}
	return nil
}

// Delete elimina el expediente; los indicios se borran en cascada.
func (r *ExpedienteRepo) Delete(ctx context.Context, id int) error {
	if err := r.gw.Exec(ctx, Call{Proc: "sp_eliminar_expediente", Params: []Param{Int("p_id_expediente", id)}}); err != nil {
		return fmt.Errorf("eliminar expediente: %w", err)
	}
	return nil
}
