package repository

import "github.com/jhoicas/hostal-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios, personas y roles.
// El servicio de verificación de sesión depende de FindByID/FindRoleByID:
// son la única fuente de verdad de autorización.
type UserRepository interface {
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindRoleByID(id string) (*entity.Role, error)
	FindRoleByName(name entity.RoleName) (*entity.Role, error)
	FindPersonByUserID(userID string) (*entity.Person, error)
	ListWithDetails() ([]*entity.UserWithDetails, error)

	// IsInitialized indica si existe al menos un usuario con rol ADMIN.
	IsInitialized() (bool, error)

	// Save crea rol (si no existe), usuario y persona en una sola transacción.
	Save(user *entity.User, person *entity.Person, role *entity.Role) error

	// Update persiste usuario y persona juntos.
	Update(user *entity.User, person *entity.Person) error

	// Delete borrado lógico: marca deleted_at conservando el registro, que
	// FindByID sigue devolviendo para que el guard distinga "eliminado" de
	// "inexistente".
	Delete(id string) error
}
