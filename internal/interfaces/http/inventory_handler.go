package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/application/inventory"
	"github.com/sbastiane/conteo-api/internal/domain/conteo"
)

// InventoryHandler maneja las peticiones HTTP de los conteos físicos.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar conteo físico
// @Tags         inventory-counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryCountRequest  true  "Datos del conteo"
// @Success      201   {object}  dto.Response{data=dto.InventoryCountResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/inventory-counts [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido"))
	}
	if fields := validateCreateCount(in); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("Datos de entrada inválidos", fields))
	}

	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
	}
	out, err := h.uc.Create(c.Context(), in, user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar conteos físicos
// @Tags         inventory-counts
// @Security     Bearer
// @Produce      json
// @Param        countNumber  query  int     false  "Ronda (1-3)"
// @Param        cutoffDate   query  string  false  "Fecha de corte (YYYY-MM-DD)"
// @Param        warehouseId  query  string  false  "Código de bodega"
// @Param        productId    query  string  false  "Código de producto"
// @Success      200  {object}  dto.Response{data=[]dto.InventoryCountResponse}
// @Router       /api/inventory-counts [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var in dto.QueryInventoryCountRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Parámetros de consulta inválidos"))
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener conteo por ID
// @Tags         inventory-counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del conteo"
// @Success      200  {object}  dto.Response{data=dto.InventoryCountResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/inventory-counts/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar cantidad de un conteo
// @Tags         inventory-counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del conteo"
// @Param        body  body  dto.UpdateInventoryCountRequest  true  "Nueva cantidad de empaques"
// @Success      200   {object}  dto.Response{data=dto.InventoryCountResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/inventory-counts/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido"))
	}
	if in.PackageQuantity.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("Datos de entrada inválidos", []dto.FieldError{
			{Field: "packageQuantity", Message: "La cantidad de empaques no puede ser negativa"},
		}))
	}

	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar conteo
// @Tags         inventory-counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del conteo"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/inventory-counts/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	msg, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(msg))
}

// Approve godoc
// @Summary      Aprobar conteo
// @Tags         inventory-counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true   "ID del conteo"
// @Param        body  body  dto.ReviewRequest  false  "Notas opcionales"
// @Success      200   {object}  dto.Response{data=dto.InventoryCountResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/inventory-counts/{id}/approve [post]
func (h *InventoryHandler) Approve(c *fiber.Ctx) error {
	in, adminID, errResp := h.reviewInput(c)
	if errResp != nil {
		return errResp(c)
	}
	out, err := h.uc.Approve(c.Context(), c.Params("id"), adminID, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// RequestRecount godoc
// @Summary      Solicitar reconteo
// @Tags         inventory-counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true   "ID del conteo"
// @Param        body  body  dto.ReviewRequest  false  "Notas opcionales"
// @Success      200   {object}  dto.Response{data=dto.InventoryCountResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/inventory-counts/{id}/request-recount [post]
func (h *InventoryHandler) RequestRecount(c *fiber.Ctx) error {
	in, adminID, errResp := h.reviewInput(c)
	if errResp != nil {
		return errResp(c)
	}
	out, err := h.uc.RequestRecount(c.Context(), c.Params("id"), adminID, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Reject godoc
// @Summary      Rechazar conteo
// @Tags         inventory-counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del conteo"
// @Param        body  body  dto.ReviewRequest  true  "Notas obligatorias"
// @Success      200   {object}  dto.Response{data=dto.InventoryCountResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/inventory-counts/{id}/reject [post]
func (h *InventoryHandler) Reject(c *fiber.Ctx) error {
	in, adminID, errResp := h.reviewInput(c)
	if errResp != nil {
		return errResp(c)
	}
	if in.Notes == nil || *in.Notes == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailFields("Datos de entrada inválidos", []dto.FieldError{
			{Field: "notes", Message: "Las notas son obligatorias al rechazar un conteo"},
		}))
	}
	out, err := h.uc.Reject(c.Context(), c.Params("id"), adminID, *in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// reviewInput parsea el body opcional de revisión y resuelve el admin actual.
func (h *InventoryHandler) reviewInput(c *fiber.Ctx) (dto.ReviewRequest, string, fiber.Handler) {
	var in dto.ReviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return in, "", func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido"))
			}
		}
	}
	user := CurrentUser(c)
	if user == nil {
		return in, "", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No autorizado"))
		}
	}
	return in, user.ID, nil
}

func validateCreateCount(in dto.CreateInventoryCountRequest) []dto.FieldError {
	fields := make([]dto.FieldError, 0, 4)
	if in.CountNumber < conteo.MinCountNumber || in.CountNumber > conteo.MaxCountNumber {
		fields = append(fields, dto.FieldError{Field: "countNumber", Message: "El número de conteo debe estar entre 1 y 3"})
	}
	if _, err := time.Parse("2006-01-02", in.CutoffDate); err != nil {
		fields = append(fields, dto.FieldError{Field: "cutoffDate", Message: "Formato de fecha inválido (YYYY-MM-DD)"})
	}
	if in.WarehouseID == "" {
		fields = append(fields, dto.FieldError{Field: "warehouseId", Message: "La bodega es requerida"})
	}
	if in.ProductID == "" {
		fields = append(fields, dto.FieldError{Field: "productId", Message: "El producto es requerido"})
	}
	if in.PackageQuantity.IsNegative() {
		fields = append(fields, dto.FieldError{Field: "packageQuantity", Message: "La cantidad de empaques no puede ser negativa"})
	}
	return fields
}
