package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo ADMIN a través del guard).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta usuario + persona. El rol se crea perezosamente si no
// existe todavía, siempre que pertenezca al conjunto cerrado de roles.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) error {
	roleName := entity.RoleName(in.Role)
	if !roleName.Valid() {
		return domain.ErrInvalidInput
	}

	existing, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	role := &entity.Role{
		Name:        roleName,
		Description: "Rol de " + string(roleName),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	person := &entity.Person{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Document:  in.Document,
		Phone:     in.Phone,
		Status:    "ACTIVE",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return uc.repo.Save(user, person, role)
}

// List devuelve usuarios con su persona y rol.
func (uc *UserUseCase) List() ([]dto.UserDetailResponse, error) {
	list, err := uc.repo.ListWithDetails()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.UserDetailResponse{
			ID:        d.User.ID,
			Email:     d.User.Email,
			FirstName: d.Person.FirstName,
			LastName:  d.Person.LastName,
			Document:  d.Person.Document,
			Phone:     d.Person.Phone,
			Role:      string(d.Role.Name),
			IsActive:  d.User.IsActive,
			DeletedAt: d.User.DeletedAt,
			CreatedAt: d.User.CreatedAt,
			UpdatedAt: d.User.UpdatedAt,
		})
	}
	return out, nil
}

// Update actualización parcial de usuario y persona, respetando los valores
// existentes para los campos no enviados.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) error {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	person, err := uc.repo.FindPersonByUserID(id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrPersonNotFound
	}

	if in.Role != nil {
		roleName := entity.RoleName(*in.Role)
		if !roleName.Valid() {
			return domain.ErrInvalidInput
		}
		role, err := uc.repo.FindRoleByName(roleName)
		if err != nil {
			return err
		}
		if role == nil {
			return domain.ErrRoleNotFound
		}
		user.RoleID = role.ID
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.FirstName != nil {
		person.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		person.LastName = *in.LastName
	}
	if in.Document != nil {
		person.Document = *in.Document
	}
	if in.Phone != nil {
		person.Phone = *in.Phone
	}
	if user.IsActive {
		person.Status = "ACTIVE"
	} else {
		person.Status = "INACTIVE"
	}

	now := time.Now()
	user.UpdatedAt = now
	person.UpdatedAt = now
	return uc.repo.Update(user, person)
}

// UpdateStatus activa o desactiva la cuenta. Una cuenta inactiva es
// rechazada por el guard en el siguiente request, aunque su token siga vivo.
func (uc *UserUseCase) UpdateStatus(id string, isActive bool) error {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	person, err := uc.repo.FindPersonByUserID(id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrPersonNotFound
	}

	user.IsActive = isActive
	if isActive {
		person.Status = "ACTIVE"
	} else {
		person.Status = "INACTIVE"
	}
	now := time.Now()
	user.UpdatedAt = now
	person.UpdatedAt = now
	return uc.repo.Update(user, person)
}

// Delete borrado lógico del usuario. El guard rechaza la cuenta con
// USER_DELETED en el siguiente request, aunque su token siga vivo.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}
