package auth

import (
	"context"
	"testing"

	"github.com/jhoicas/dicri-api/internal/application/dto"
	"github.com/jhoicas/dicri-api/internal/domain"
	"github.com/jhoicas/dicri-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsuarios solo implementa Authenticate; el resto del puerto no se usa en login.
type fakeUsuarios struct {
	password string
	usuario  *entity.Usuario
	calls    int
}

func (f *fakeUsuarios) List(context.Context) ([]*entity.Usuario, error)       { return nil, nil }
func (f *fakeUsuarios) GetByID(context.Context, int) (*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarios) Create(context.Context, *entity.Usuario) (int, error)  { return 0, nil }
func (f *fakeUsuarios) Update(context.Context, entity.UsuarioChanges) error   { return nil }
func (f *fakeUsuarios) Delete(context.Context, int) error                     { return nil }

func (f *fakeUsuarios) Authenticate(_ context.Context, username, password string) (*entity.Usuario, error) {
	f.calls++
	if username == f.usuario.Username && password == f.password {
		return f.usuario, nil
	}
	return nil, nil
}

func newFake() *fakeUsuarios {
	return &fakeUsuarios{
		password: "Tecnico123!",
		usuario:  &entity.Usuario{ID: 5, Username: "jperez", FullName: "Juan Pérez", IDRol: 2, RoleName: "Tecnico", IsActive: true},
	}
}

func TestLogin_Exitoso(t *testing.T) {
	uc := NewAuthUseCase(newFake())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "Tecnico123!"})
	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", out.Message)
	assert.Equal(t, "jperez", out.User.Username)
	assert.Equal(t, "Tecnico", out.User.RoleName)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := NewAuthUseCase(newFake())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.EqualError(t, err, "Credenciales inválidas")
}

func TestLogin_FaltaPassword_NoConsultaDB(t *testing.T) {
	repo := newFake()
	uc := NewAuthUseCase(repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jperez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, repo.calls)
}
