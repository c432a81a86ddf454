package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/pkg/jwt"
)

// Locals key para el usuario autenticado en Fiber.
const localUser = "auth_user"

// UserProvider carga el usuario (con sus bodegas) a partir del ID del token.
// Lo satisface repository.UserRepository; los tests inyectan un fake.
type UserProvider interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// Authenticate valida el Bearer Token JWT y carga el usuario con sus bodegas
// a c.Locals. El usuario debe seguir existiendo en la base de datos: un token
// válido de un usuario eliminado no autentica.
func Authenticate(jwtSecret string, users UserProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token no proporcionado"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Formato esperado: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token no proporcionado"))
		}

		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Token inválido"))
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Usuario no encontrado"))
		}

		c.Locals(localUser, user)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados (después de Authenticate).
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("No tiene permisos para realizar esta acción"))
	}
}

// RequireWarehouseAccess verifica que el usuario tenga asignada la bodega
// referida en el body, params o query (campo warehouseId). Los ADMIN tienen
// acceso a todas las bodegas.
func RequireWarehouseAccess(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
		}
		if user.Role == entity.RoleAdmin {
			return c.Next()
		}

		warehouseID := warehouseIDFromRequest(c, field)
		if warehouseID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("ID de bodega no especificado"))
		}
		if !user.HasWarehouse(warehouseID) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("No tiene acceso a esta bodega"))
		}
		return c.Next()
	}
}

func warehouseIDFromRequest(c *fiber.Ctx, field string) string {
	var body map[string]any
	if err := c.BodyParser(&body); err == nil {
		if v, ok := body[field].(string); ok && v != "" {
			return v
		}
	}
	if v := c.Params(field); v != "" {
		return v
	}
	return c.Query(field)
}

// CurrentUser devuelve el usuario autenticado del contexto (después de Authenticate).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(localUser)
	if v == nil {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}
