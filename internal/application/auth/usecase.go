package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
	"github.com/jhoicas/hostal-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: login, registro del admin
// inicial y estado del sistema.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt, exige cuenta activa,
// y devuelve token + usuario. Email desconocido y password incorrecto
// producen el mismo error para no filtrar qué emails existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := uc.userRepo.FindRoleByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := string(entity.RoleRecepcionista)
	if role != nil {
		roleName = string(role.Name)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, roleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.SessionUser{ID: user.ID, Email: user.Email, Role: roleName},
	}, nil
}

// RegisterAdmin crea el primer (y único) administrador. Si el sistema ya
// está inicializado (existe un usuario con rol ADMIN) falla con
// ErrAlreadyInitialized: esta operación solo puede tener éxito una vez.
func (uc *AuthUseCase) RegisterAdmin(in dto.RegisterAdminRequest) error {
	initialized, err := uc.userRepo.IsInitialized()
	if err != nil {
		return err
	}
	if initialized {
		return domain.ErrAlreadyInitialized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	role := &entity.Role{
		Name:        entity.RoleAdmin,
		Description: "Acceso total al sistema",
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
	return uc.userRepo.Save(user, person, role)
}

// SystemStatus indica si ya existe un ADMIN (pantalla de primer arranque).
func (uc *AuthUseCase) SystemStatus() (*dto.SystemStatusResponse, error) {
	initialized, err := uc.userRepo.IsInitialized()
	if err != nil {
		return nil, err
	}
	return &dto.SystemStatusResponse{Initialized: initialized}, nil
}
