package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain"
)

// respondError traduce los errores de dominio al código HTTP y al sobre
// de respuesta correspondientes.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Credenciales inválidas"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("No tiene permisos para realizar esta acción"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Error interno del servidor"))
	}
}
