package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)

var rolColumns = []string{"id_rol", "role_name", "description", "is_active", "created_at", "updated_at"}

// RolRepo implementación del puerto RolRepository sobre los procedimientos sp_*_rol.
type RolRepo struct {
	gw *Gateway
}

// NewRolRepository construye el adaptador de persistencia para roles.
func NewRolRepository(gw *Gateway) *RolRepo {
	return &RolRepo{gw: gw}
}

func scanRol(row pgx.Rows) (*entity.Rol, error) {
	var r entity.Rol
	err := row.Scan(&r.ID, &r.RoleName, &r.Description, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

// List devuelve todos los roles (activos e inactivos).
func (r *RolRepo) List(ctx context.Context) ([]*entity.Rol, error) {
	return r.consultar(ctx, nil)
}

// GetByID obtiene un rol por ID; nil si no existe.
func (r *RolRepo) GetByID(ctx context.Context, id int) (*entity.Rol, error) {
	list, err := r.consultar(ctx, &id)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *RolRepo) consultar(ctx context.Context, id *int) ([]*entity.Rol, error) {
	list := make([]*entity.Rol, 0)
	err := r.gw.Call(ctx, Call{
		Proc:    "sp_consultar_roles",
		Columns: rolColumns,
		Params:  []Param{Int("p_id_rol", id)},
	}, func(row pgx.Rows) error {
		rol, err := scanRol(row)
		if err != nil {
			return err
		}
		list = append(list, rol)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("consultar roles: %w", err)
	}
	return list, nil
}

// Create inserta el rol y devuelve el ID generado.
func (r *RolRepo) Create(ctx context.Context, rol *entity.Rol) (int, error) {
	id, err := insertReturningID(ctx, r.gw, Call{
		Proc:    "sp_insertar_rol",
		Columns: []string{"id_rol"},
		Params: []Param{
			Text("p_role_name", rol.RoleName),
			Text("p_description", rol.Description),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("insertar rol: %w", err)
	}
	return id, nil
}

// Update actualiza nombre, descripción y estado activo; los campos nil no se modifican.
func (r *RolRepo) Update(ctx context.Context, changes entity.RolChanges) error {
	err := r.gw.Exec(ctx, Call{
		Proc: "sp_actualizar_rol",
		Params: []Param{
			Int("p_id_rol", changes.ID),
			Text("p_role_name", changes.RoleName),
			Text("p_description", changes.Description),
			Bool("p_is_active", changes.IsActive),
		},
	})
	if err != nil {
		return fmt.Errorf("actualizar rol: %w", err)
	}
	return nil
}

// Delete desactiva el rol.
func (r *RolRepo) Delete(ctx context.Context, id int) error {
	if err := r.gw.Exec(ctx, Call{Proc: "sp_eliminar_rol", Params: []Param{Int("p_id_rol", id)}}); err != nil {
		return fmt.Errorf("eliminar rol: %w", err)
	}
	return nil
}
