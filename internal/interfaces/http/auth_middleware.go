package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
)

// Cabecera de identidad propia del sistema; se reenvía tal cual entre servicios.
const HeaderAuthToken = "auth-token"

// Locals keys para identidad y token en Fiber.
const (
	LocalIdentity = "identity"
	LocalToken    = "auth_token"
)

// IdentityMiddleware resuelve la identidad del token y la deja en c.Locals
// junto con el token crudo (los usecases lo reenvían aguas abajo). Cualquier
// fallo de resolución corta con 401 antes de tocar handler o almacenamiento.
func IdentityMiddleware(resolver ports.IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderAuthToken)
		identity, err := resolver.Resolve(token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrMissingToken):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token faltante"})
			case errors.Is(err, domain.ErrInvalidToken):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
			case errors.Is(err, domain.ErrUserNotFound):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado o no autorizado"})
			default:
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no fue posible resolver la identidad"})
			}
		}
		c.Locals(LocalIdentity, identity)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware).
func GetIdentity(c *fiber.Ctx) *ports.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*ports.Identity)
	return id
}

// GetToken devuelve el token crudo del contexto (después del middleware).
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
