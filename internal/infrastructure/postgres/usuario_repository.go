package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

var usuarioColumns = []string{
	"id_usuario", "username", "full_name", "id_rol", "role_name", "is_active", "created_at", "updated_at",
}

// UsuarioRepo implementación del puerto UsuarioRepository. El password nunca se lee de vuelta:
// el hash y la comparación ocurren en sp_insertar_usuario y sp_autenticar_usuario.
type UsuarioRepo struct {
	gw *Gateway
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(gw *Gateway) *UsuarioRepo {
	return &UsuarioRepo{gw: gw}
}

func (r *UsuarioRepo) collect(ctx context.Context, call Call) ([]*entity.Usuario, error) {
	list := make([]*entity.Usuario, 0)
	err := r.gw.Call(ctx, call, func(row pgx.Rows) error {
		var u entity.Usuario
		if err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.IDRol, &u.RoleName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		list = append(list, &u)
		return nil
	})
	return list, err
}

// List devuelve todos los usuarios con el nombre de su rol.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	list, err := r.collect(ctx, Call{
		Proc:    "sp_consultar_usuarios",
		Columns: usuarioColumns,
		Params:  []Param{Int("p_id_usuario", nil)},
	})
	if err != nil {
		return nil, fmt.Errorf("consultar usuarios: %w", err)
	}
	return list, nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	list, err := r.collect(ctx, Call{
		Proc:    "sp_consultar_usuarios",
		Columns: usuarioColumns,
		Params:  []Param{Int("p_id_usuario", id)},
	})
	if err != nil {
		return nil, fmt.Errorf("consultar usuario: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Create inserta el usuario y devuelve el ID generado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int, error) {
	id, err := insertReturningID(ctx, r.gw, Call{
		Proc:    "sp_insertar_usuario",
		Columns: []string{"id_usuario"},
		Params: []Param{
			Text("p_username", u.Username),
			Text("p_password", u.Password),
			Text("p_full_name", u.FullName),
			Int("p_id_rol", u.IDRol),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("insertar usuario: %w", err)
	}
	return id, nil
}

// Update actualiza username, nombre, rol y estado activo; los campos nil no se modifican.
func (r *UsuarioRepo) Update(ctx context.Context, changes entity.UsuarioChanges) error {
	err := r.gw.Exec(ctx, Call{
		Proc: "sp_actualizar_usuario",
		Params: []Param{
			Int("p_id_usuario", changes.ID),
			Text("p_username", changes.Username),
			Text("p_full_name", changes.FullName),
			Int("p_id_rol", changes.IDRol),
			Bool("p_is_active", changes.IsActive),
		},
	})
	if err != nil {
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	return nil
}

// Delete desactiva el usuario.
func (r *UsuarioRepo) Delete(ctx context.Context, id int) error {
	if err := r.gw.Exec(ctx, Call{Proc: "sp_eliminar_usuario", Params: []Param{Int("p_id_usuario", id)}}); err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}

// Authenticate delega la verificación de credenciales a sp_autenticar_usuario.
func (r *UsuarioRepo) Authenticate(ctx context.Context, username, password string) (*entity.Usuario, error) {
	list, err := r.collect(ctx, Call{
		Proc:    "sp_autenticar_usuario",
		Columns: usuarioColumns,
		Params: []Param{
			Text("p_username", username),
			Text("p_password", password),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("autenticar usuario: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}
