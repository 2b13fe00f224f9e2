package auth

import (
	"context"

	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// VerifiedUser identidad re-derivada desde la base de datos. Es lo que
// reciben los handlers: nunca los claims crudos del token.
type VerifiedUser struct {
	ID    string
	Email string
	Role  entity.RoleName
}

// VerificationService re-deriva la validez de un usuario desde el estado
// persistido. Es el ÚNICO lugar donde se decide autorización: los claims del
// token son una pista, no la verdad. Esto cierra la ventana en la que una
// cuenta revocada o degradada conserva acceso hasta que expire su token.
type VerificationService struct {
	userRepo repository.UserRepository
}

// NewVerificationService construye el servicio.
func NewVerificationService(userRepo repository.UserRepository) *VerificationService {
	return &VerificationService{userRepo: userRepo}
}

// Verify valida al usuario contra la DB y su rol contra requiredRoles.
// Los chequeos se cortan en la primera falla, en este orden:
//
//	ErrUserNotFound → ErrUserInactive → ErrUserDeleted → ErrRoleNotFound → ErrForbidden
//
// Cada request protegido paga un round-trip a la DB aquí. Es deliberado:
// defensa contra tokens revocados-pero-no-expirados.
func (s *VerificationService) Verify(ctx context.Context, userID string, requiredRoles []entity.RoleName) (*VerifiedUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	if user.DeletedAt != nil {
		return nil, domain.ErrUserDeleted
	}

	role, err := s.userRepo.FindRoleByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotFound
	}

	allowed := false
	for _, r := range requiredRoles {
		if role.Name == r {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return &VerifiedUser{ID: user.ID, Email: user.Email, Role: role.Name}, nil
}
