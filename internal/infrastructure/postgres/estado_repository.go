package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

var _ repository.EstadoRepository = (*EstadoRepo)(nil)

var estadoColumns = []string{"id_estado", "state_name", "description", "is_active"}

// EstadoRepo implementación del puerto EstadoRepository sobre sp_*_estado_expediente.
type EstadoRepo struct {
	gw *Gateway
}

// NewEstadoRepository construye el adaptador de persistencia para estados.
func NewEstadoRepository(gw *Gateway) *EstadoRepo {
	return &EstadoRepo{gw: gw}
}

// List devuelve todos los estados.
func (r *EstadoRepo) List(ctx context.Context) ([]*entity.Estado, error) {
	return r.consultar(ctx, nil)
}

// GetByID obtiene un estado por ID; nil si no existe.
func (r *EstadoRepo) GetByID(ctx context.Context, id int) (*entity.Estado, error) {
	list, err := r.consultar(ctx, &id)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// FindActiveByName busca en la tabla de estados el activo con ese nombre exacto.
func (r *EstadoRepo) FindActiveByName(ctx context.Context, name string) (*entity.Estado, error) {
	list, err := r.consultar(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.IsActive && e.StateName == name {
			return e, nil
		}
	}
	return nil, nil
}

func (r *EstadoRepo) consultar(ctx context.Context, id *int) ([]*entity.Estado, error) {
	list := make([]*entity.Estado, 0)
	err := r.gw.Call(ctx, Call{
		Proc:    "sp_consultar_estados_expediente",
		Columns: estadoColumns,
		Params:  []Param{Int("p_id_estado", id)},
	}, func(row pgx.Rows) error {
		var e entity.Estado
		if err := row.Scan(&e.ID, &e.StateName, &e.Description, &e.IsActive); err != nil {
			return err
		}
		list = append(list, &e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("consultar estados: %w", err)
	}
	return list, nil
}

// Create inserta el estado y devuelve el ID generado.
func (r *EstadoRepo) Create(ctx context.Context, estado *entity.Estado) (int, error) {
	id, err := insertReturningID(ctx, r.gw, Call{
		Proc:    "sp_insertar_estado_expediente",
		Columns: []string{"id_estado"},
		Params: []Param{
			Text("p_state_name", estado.StateName),
			Text("p_description", estado.Description),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("insertar estado: %w", err)
	}
	return id, nil
}

// Update actualiza el estado; los campos nil no se modifican.
func (r *EstadoRepo) Update(ctx context.Context, changes entity.EstadoChanges) error {
	err := r.gw.Exec(ctx, Call{
		Proc: "sp_actualizar_estado_expediente",
		Params: []Param{
			Int("p_id_estado", changes.ID),
			Text("p_state_name", changes.StateName),
			Text("p_description", changes.Description),
			Bool("p_is_active", changes.IsActive),
		},
	})
	if err != nil {
		return fmt.Errorf("actualizar estado: %w", err)
	}
	return nil
}

// Delete desactiva el estado.
func (r *EstadoRepo) Delete(ctx context.Context, id int) error {
	if err := r.gw.Exec(ctx, Call{Proc: "sp_eliminar_estado_expediente", Params: []Param{Int("p_id_estado", id)}}); err != nil {
		return fmt.Errorf("eliminar estado: %w", err)
	}
	return nil
}
