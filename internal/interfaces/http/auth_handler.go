package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/auth"
	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
)

// AuthHandler maneja login, registro inicial y estado del sistema.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "email o contraseña incorrectos"})
		case errors.Is(err, domain.ErrUserInactive):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_INACTIVE", Message: "la cuenta está desactivada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RegisterAdmin godoc
// @Summary      Registrar el administrador inicial (solo una vez)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdminRequest  true  "Datos del administrador"
// @Success      201   {object}  dto.SystemStatusResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var in dto.RegisterAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.FirstName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y firstName son requeridos"})
	}
	if err := h.uc.RegisterAdmin(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyInitialized):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SYSTEM_ALREADY_INITIALIZED", Message: "el sistema ya fue inicializado"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SystemStatusResponse{Initialized: true})
}

// SystemStatus godoc
// @Summary      Estado de inicialización del sistema
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SystemStatusResponse
// @Router       /api/auth/system-status [get]
func (h *AuthHandler) SystemStatus(c *fiber.Ctx) error {
	out, err := h.uc.SystemStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// VerifySession godoc
// @Summary      Re-validar la sesión contra la base de datos
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerifySessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/verify-session [get]
func (h *AuthHandler) VerifySession(c *fiber.Ctx) error {
	// RequireRole ya verificó al usuario contra la DB; aquí solo se devuelve
	// la identidad re-derivada (no los claims del token).
	u := GetVerifiedUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no verificada"})
	}
	return c.JSON(dto.VerifySessionResponse{
		Valid: true,
		User:  &dto.SessionUser{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}
