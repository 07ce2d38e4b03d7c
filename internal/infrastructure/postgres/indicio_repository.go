package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

var _ repository.IndicioRepository = (*IndicioRepo)(nil)

var indicioColumns = []string{
	"id_indicio", "id_expediente", "file_number", "description",
	"color", "size", "weight", "location",
	"id_tecnico_registro", "tecnico_registro", "created_at", "updated_at",
}

// IndicioRepo implementación del puerto IndicioRepository.
type IndicioRepo struct {
	gw *Gateway
}

// NewIndicioRepository construye el adaptador de persistencia para indicios.
func NewIndicioRepository(gw *Gateway) *IndicioRepo {
	return &IndicioRepo{gw: gw}
}

// List devuelve los indicios, opcionalmente filtrados por expediente.
func (r *IndicioRepo) List(ctx context.Context, idExpediente *int) ([]*entity.Indicio, error) {
	return r.consultar(ctx, nil, idExpediente)
}

// GetByID obtiene un indicio por ID; nil si no existe.
func (r *IndicioRepo) GetByID(ctx context.Context, id int) (*entity.Indicio, error) {
	list, err := r.consultar(ctx, &id, nil)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *IndicioRepo) consultar(ctx context.Context, id, idExpediente *int) ([]*entity.Indicio, error) {
	list := make([]*entity.Indicio, 0)
	err := r.gw.Call(ctx, Call{
		Proc:    "sp_consultar_indicios",
		Columns: indicioColumns,
		Params: []Param{
			Int("p_id_indicio", id),
			Int("p_id_expediente", idExpediente),
		},
	}, func(row pgx.Rows) error {
		var i entity.Indicio
		if err := row.Scan(
			&i.ID, &i.IDExpediente, &i.FileNumber, &i.Description,
			&i.Color, &i.Size, &i.Weight, &i.Location,
			&i.IDTecnicoRegistro, &i.TecnicoRegistro, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return err
		}
		list = append(list, &i)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("consultar indicios: %w", err)
	}
	return list, nil
}

// Create inserta el indicio y devuelve el ID generado.
func (r *IndicioRepo) Create(ctx context.Context, in *entity.Indicio) (int, error) {
	id, err := insertReturningID(ctx, r.gw, Call{
		Proc:    "sp_insertar_indicio",
		Columns: []string{"id_indicio"},
		Params: []Param{
			Int("p_id_expediente", in.IDExpediente),
			Text("p_description", in.Description),
			Text("p_color", in.Color),
			Text("p_size", in.Size),
			Text("p_weight", in.Weight),
			Text("p_location", in.Location),
			Int("p_id_tecnico_registro", in.IDTecnicoRegistro),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("insertar indicio: %w", err)
	}
	return id, nil
}

// Update actualiza el indicio.
func (r *IndicioRepo) Update(ctx context.Context, changes entity.IndicioChanges) error {
	err := r.gw.Exec(ctx, Call{
		Proc: "sp_actualizar_indicio",
		Params: []Param{
			Int("p_id_indicio", changes.ID),
			Text("p_description", changes.Description),
			Text("p_color", changes.Color),
			Text("p_size", changes.Size),
			Text("p_weight", changes.Weight),
			Text("p_location", changes.Location),
		},
	})
	if err != nil {
		return fmt.Errorf("actualizar indicio: %w", err)
	}
	return nil
}

func (r *IndicioRepo) Delete(ctx context.Context, id int) error {
	if err := r.gw.Exec(ctx, Call{Proc: "sp_eliminar_indicio", Params: []Param{Int("p_id_indicio", id)}}); err != nil {
		return fmt.Errorf("eliminar indicio: %w", err)
	}
	return nil
}
