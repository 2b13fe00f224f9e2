package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	// LocalAuthContext identidad extraída del token (sin verificar contra DB).
	LocalAuthContext = "auth_context"
	// LocalVerifiedUser identidad re-derivada de la DB por RequireRole.
	LocalVerifiedUser = "verified_user"
)

// AuthContext identidad según el token. Se construye UNA vez por request en
// AuthMiddleware; nadie más vuelve a parsear el token ni lee headers crudos.
type AuthContext struct {
	UserID string
	Email  string
	Role   string
}

// AuthMiddleware valida el Bearer Token JWT y deja un AuthContext tipado en
// c.Locals. Solo prueba posesión de un token válido: la autorización real la
// hace RequireRole contra la base de datos.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAuthContext, &AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		return c.Next()
	}
}

// GetAuthContext devuelve el AuthContext del request (después de AuthMiddleware).
func GetAuthContext(c *fiber.Ctx) *AuthContext {
	v := c.Locals(LocalAuthContext)
	if v == nil {
		return nil
	}
	ac, _ := v.(*AuthContext)
	return ac
}
