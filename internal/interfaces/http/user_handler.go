package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/application/usecase"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// UserHandler maneja el CRUD de usuarios (solo administradores).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.Response{data=dto.UserResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido"))
	}
	if fields := validateCreateUser(in); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("Datos de entrada inválidos", fields))
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.UserResponse}
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.UserResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido"))
	}
	if in.Role != nil && !validRole(*in.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("Datos de entrada inválidos", []dto.FieldError{
			{Field: "role", Message: "El rol debe ser ADMIN o USER"},
		}))
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	msg, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(msg))
}

func validateCreateUser(in dto.CreateUserRequest) []dto.FieldError {
	fields := make([]dto.FieldError, 0, 4)
	if in.Identification == "" {
		fields = append(fields, dto.FieldError{Field: "identification", Message: "La identificación es requerida"})
	}
	if in.Name == "" {
		fields = append(fields, dto.FieldError{Field: "name", Message: "El nombre es requerido"})
	}
	if len(in.Password) < 6 {
		fields = append(fields, dto.FieldError{Field: "password", Message: "La contraseña debe tener al menos 6 caracteres"})
	}
	if !validRole(in.Role) {
		fields = append(fields, dto.FieldError{Field: "role", Message: "El rol debe ser ADMIN o USER"})
	}
	return fields
}

func validRole(role string) bool {
	return role == string(entity.RoleAdmin) || role == string(entity.RoleUser)
}
