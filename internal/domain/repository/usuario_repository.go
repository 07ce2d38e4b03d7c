package repository

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	List(ctx context.Context) ([]*entity.Usuario, error)
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	Create(ctx context.Context, usuario *entity.Usuario) (int, error)
	// Update no modifica el password.
	Update(ctx context.Context, changes entity.UsuarioChanges) error
	Delete(ctx context.Context, id int) error
	// Authenticate devuelve el usuario activo cuyas credenciales coinciden, o nil.
	Authenticate(ctx context.Context, username, password string) (*entity.Usuario, error)
}
