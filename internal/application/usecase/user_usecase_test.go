package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostal-api/internal/application/auth"
	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/application/usecase"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

// memUserRepo repositorio de usuarios en memoria. Guarda lo que recibe tal
// cual, sin reparar vínculos: exactamente lo que hace la implementación real.
type memUserRepo struct {
	users   map[string]*entity.User
	roles   map[string]*entity.Role
	persons map[string]*entity.Person
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:   make(map[string]*entity.User),
		roles:   make(map[string]*entity.Role),
		persons: make(map[string]*entity.Person),
	}
}

func (m *memUserRepo) FindByID(id string) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindRoleByID(id string) (*entity.Role, error) {
	return m.roles[id], nil
}

func (m *memUserRepo) FindRoleByName(name entity.RoleName) (*entity.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindPersonByUserID(userID string) (*entity.Person, error) {
	for _, p := range m.persons {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) ListWithDetails() ([]*entity.UserWithDetails, error) {
	var out []*entity.UserWithDetails
	for _, u := range m.users {
		if u.DeletedAt != nil {
			continue
		}
		d := &entity.UserWithDetails{User: *u}
		if r := m.roles[u.RoleID]; r != nil {
			d.Role = *r
		}
		if p, _ := m.FindPersonByUserID(u.ID); p != nil {
			d.Person = *p
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memUserRepo) IsInitialized() (bool, error) {
	for _, u := range m.users {
		if r := m.roles[u.RoleID]; r != nil && r.Name == entity.RoleAdmin && u.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) Save(user *entity.User, person *entity.Person, role *entity.Role) error {
	existing, _ := m.FindRoleByName(role.Name)
	if existing == nil {
		if role.ID == "" {
			role.ID = "role-" + string(role.Name)
		}
		m.roles[role.ID] = role
		existing = role
	}
	user.RoleID = existing.ID
	m.users[user.ID] = user
	m.persons[person.ID] = person
	return nil
}

func (m *memUserRepo) Update(user *entity.User, person *entity.Person) error {
	m.users[user.ID] = user
	for id, p := range m.persons {
		if p.UserID == user.ID {
			person.ID = id
			m.persons[id] = person
		}
	}
	return nil
}

func (m *memUserRepo) Delete(id string) error {
	u, ok := m.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	return nil
}

func createUser(t *testing.T, uc *usecase.UserUseCase, email, role string) {
	t.Helper()
	require.NoError(t, uc.Create(dto.CreateUserRequest{
		Email:     email,
		Password:  "secreta123",
		FirstName: "Luis",
		LastName:  "García",
		Role:      role,
	}))
}

func TestUserCreate_VinculaPersonaAlUsuario(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)

	createUser(t, uc, "recep@hostal.test", "RECEPCIONISTA")

	user, err := repo.FindByEmail("recep@hostal.test")
	require.NoError(t, err)
	require.NotNil(t, user)

	person, err := repo.FindPersonByUserID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, person, "la persona debe guardarse apuntando al usuario")
	assert.Equal(t, user.ID, person.UserID)
	assert.Equal(t, "Luis", person.FirstName)
}

func TestUserCreate_EmailDuplicado_ErrEmailAlreadyExists(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)
	createUser(t, uc, "recep@hostal.test", "RECEPCIONISTA")

	err := uc.Create(dto.CreateUserRequest{
		Email: "recep@hostal.test", Password: "otra", FirstName: "Eva", Role: "LIMPIEZA",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolFueraDelEnum_ErrInvalidInput(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())

	err := uc.Create(dto.CreateUserRequest{
		Email: "x@hostal.test", Password: "secreta", FirstName: "X", Role: "GERENTE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El borrado es lógico: el registro se conserva con deleted_at puesto, sale de
// los listados y del login, y el guard lo rechaza con USER_DELETED.
func TestUserDelete_EsBorradoLogico(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)
	createUser(t, uc, "recep@hostal.test", "RECEPCIONISTA")
	user, _ := repo.FindByEmail("recep@hostal.test")
	require.NotNil(t, user)

	require.NoError(t, uc.Delete(user.ID))

	kept, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, kept, "el registro se conserva")
	assert.NotNil(t, kept.DeletedAt, "con deleted_at marcado")

	byEmail, err := repo.FindByEmail("recep@hostal.test")
	require.NoError(t, err)
	assert.Nil(t, byEmail, "un usuario eliminado no puede volver a loguearse")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "los eliminados no aparecen en el listado")
}

func TestUserDelete_EliminadoEsRechazadoPorElGuard(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)
	createUser(t, uc, "recep@hostal.test", "RECEPCIONISTA")
	user, _ := repo.FindByEmail("recep@hostal.test")
	require.NotNil(t, user)

	require.NoError(t, uc.Delete(user.ID))

	svc := auth.NewVerificationService(repo)
	_, err := svc.Verify(context.Background(), user.ID, entity.AllRoles())
	assert.ErrorIs(t, err, domain.ErrUserDeleted)
}

func TestUserDelete_SegundaVez_ErrUserNotFound(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)
	createUser(t, uc, "recep@hostal.test", "RECEPCIONISTA")
	user, _ := repo.FindByEmail("recep@hostal.test")
	require.NotNil(t, user)

	require.NoError(t, uc.Delete(user.ID))
	assert.ErrorIs(t, uc.Delete(user.ID), domain.ErrUserNotFound)
}

func TestUserUpdateStatus_DesactivaUsuarioYPersona(t *testing.T) {
	repo := newMemUserRepo()
	uc := usecase.NewUserUseCase(repo)
	createUser(t, uc, "recep@hostal.test", "RECEPCIONISTA")
	user, _ := repo.FindByEmail("recep@hostal.test")
	require.NotNil(t, user)

	require.NoError(t, uc.UpdateStatus(user.ID, false))

	updated, _ := repo.FindByID(user.ID)
	assert.False(t, updated.IsActive)
	person, _ := repo.FindPersonByUserID(user.ID)
	require.NotNil(t, person)
	assert.Equal(t, "INACTIVE", person.Status)
}
