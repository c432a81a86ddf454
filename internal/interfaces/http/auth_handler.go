package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sbastiane/conteo-api/internal/application/auth"
	"github.com/sbastiane/conteo-api/internal/application/dto"
)

// AuthHandler maneja login y consulta del usuario autenticado.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido"))
	}
	fields := make([]dto.FieldError, 0, 2)
	if in.Identification == "" {
		fields = append(fields, dto.FieldError{Field: "identification", Message: "La identificación es requerida"})
	}
	if in.Password == "" {
		fields = append(fields, dto.FieldError{Field: "password", Message: "La contraseña es requerida"})
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("Datos de entrada inválidos", fields))
	}

	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
	}
	return c.JSON(dto.OK(auth.ToUserResponse(user)))
}
