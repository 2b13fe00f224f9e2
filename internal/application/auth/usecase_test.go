package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostal-api/internal/application/auth"
	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/hostal-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   testSecret,
		ExpHours: 24,
		Issuer:   "hostal-api-test",
	})
}

func TestRegisterAdmin_PrimeraVez_CreaAdminYRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	err := uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email:     "admin@hostal.test",
		Password:  "secreta123",
		FirstName: "Ana",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	initialized, err := repo.IsInitialized()
	require.NoError(t, err)
	assert.True(t, initialized, "tras registrar el admin el sistema queda inicializado")

	role, err := repo.FindRoleByName(entity.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, role, "el rol ADMIN se crea perezosamente")

	user, err := repo.FindByEmail("admin@hostal.test")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secreta123", user.PasswordHash, "la contraseña nunca se guarda en claro")
}

// La persona queda vinculada al usuario (persons.user_id es NOT NULL con FK):
// un alta cuya persona no apunte al usuario recién creado es inválida.
func TestRegisterAdmin_VinculaPersonaAlUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	require.NoError(t, uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email:     "admin@hostal.test",
		Password:  "secreta123",
		FirstName: "Ana",
		LastName:  "Pérez",
	}))

	user, err := repo.FindByEmail("admin@hostal.test")
	require.NoError(t, err)
	require.NotNil(t, user)

	person, err := repo.FindPersonByUserID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, person, "la persona debe guardarse apuntando al usuario")
	assert.Equal(t, user.ID, person.UserID)
	assert.Equal(t, "Ana", person.FirstName)
	assert.Equal(t, "Pérez", person.LastName)
}

func TestRegisterAdmin_SegundaVez_SystemAlreadyInitialized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	require.NoError(t, uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email: "admin@hostal.test", Password: "secreta123", FirstName: "Ana",
	}))

	err := uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email: "otro@hostal.test", Password: "secreta456", FirstName: "Luis",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyInitialized,
		"el registro inicial solo puede tener éxito una vez")
}

func TestLogin_CredencialesValidas_DevuelveTokenConRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	require.NoError(t, uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email: "admin@hostal.test", Password: "secreta123", FirstName: "Ana",
	}))

	out, err := uc.Login(dto.LoginRequest{Email: "admin@hostal.test", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "admin@hostal.test", out.User.Email)
	assert.Equal(t, string(entity.RoleAdmin), out.User.Role)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, out.User.ID, claims.Subject)
	assert.Equal(t, "admin@hostal.test", claims.Email)
	assert.Equal(t, string(entity.RoleAdmin), claims.Role)
}

// Email desconocido y contraseña incorrecta producen el MISMO error: la
// respuesta no debe revelar qué emails están registrados.
func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	require.NoError(t, uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email: "admin@hostal.test", Password: "secreta123", FirstName: "Ana",
	}))

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@hostal.test", Password: "lo-que-sea"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "admin@hostal.test", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaInactiva_ErrUserInactive(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	require.NoError(t, uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email: "admin@hostal.test", Password: "secreta123", FirstName: "Ana",
	}))
	user, _ := repo.FindByEmail("admin@hostal.test")
	user.IsActive = false

	_, err := uc.Login(dto.LoginRequest{Email: "admin@hostal.test", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestSystemStatus_ReflejaInicializacion(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	status, err := uc.SystemStatus()
	require.NoError(t, err)
	assert.False(t, status.Initialized)

	require.NoError(t, uc.RegisterAdmin(dto.RegisterAdminRequest{
		Email: "admin@hostal.test", Password: "secreta123", FirstName: "Ana",
	}))

	status, err = uc.SystemStatus()
	require.NoError(t, err)
	assert.True(t, status.Initialized)
}
