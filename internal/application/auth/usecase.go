package auth

import (
	"context"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/jhoicas/dicri-api/internal/domain/repository"
)

// AuthUseCase login contra sp_autenticar_usuario. No emite token ni abre sesión:
// la comparación del password ocurre en la base de datos.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo}
}

// Login verifica Username/Password y retorna el usuario autenticado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u, err := uc.usuarioRepo.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.Unauthorized("Credenciales inválidas")
	}
	return &dto.LoginResponse{Message: "Login exitoso", User: toUsuarioResponse(u)}, nil
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		IdUsuario: u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		IdRol:     u.IDRol,
		RoleName:  u.RoleName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
