package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/auth"
	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

// sessionVerifier es el contrato mínimo que necesita el middleware. Lo
// implementa *auth.VerificationService.
type sessionVerifier interface {
	Verify(ctx context.Context, userID string, requiredRoles []entity.RoleName) (*auth.VerifiedUser, error)
}

// RequireRole devuelve un middleware que re-valida al usuario del token contra
// la base de datos y exige que su rol VIGENTE esté en la lista. Debe usarse
// DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 → el usuario del token ya no existe.
//   - 403 → cuenta inactiva, eliminada, rol inexistente o rol no permitido.
//   - 500 → fallo de infraestructura al consultar la DB; nunca se responde 403
//     por un error de DB.
func RequireRole(verifier sessionVerifier, roles ...entity.RoleName) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac := GetAuthContext(c)
		if ac == nil || ac.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no encontrada"})
		}

		verified, err := verifier.Verify(c.Context(), ac.UserID, roles)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el usuario de la sesión no existe"})
			case errors.Is(err, domain.ErrUserInactive):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USER_INACTIVE", Message: "la cuenta está desactivada"})
			case errors.Is(err, domain.ErrUserDeleted):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USER_DELETED", Message: "la cuenta fue eliminada"})
			case errors.Is(err, domain.ErrRoleNotFound):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ROLE_NOT_FOUND", Message: "el rol del usuario no existe"})
			case errors.Is(err, domain.ErrForbidden):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL_SECURITY_ERROR", Message: "no se pudo verificar la sesión"})
		}

		c.Locals(LocalVerifiedUser, verified)
		return c.Next()
	}
}

// GetVerifiedUser devuelve la identidad re-derivada de la DB (después de RequireRole).
func GetVerifiedUser(c *fiber.Ctx) *auth.VerifiedUser {
	v := c.Locals(LocalVerifiedUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*auth.VerifiedUser)
	return u
}
