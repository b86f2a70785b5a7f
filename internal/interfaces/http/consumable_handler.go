package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sarpras-api/internal/application/consumable"
	"github.com/tu-usuario/sarpras-api/internal/application/dto"
)

// ConsumableHandler maneja las peticiones HTTP para consumibles: catálogo,
// transacciones de stock, ledger y reporte de reorden (protegido).
type ConsumableHandler struct {
	catalog *consumable.CatalogUseCase
	stock   *consumable.StockUseCase
}

// NewConsumableHandler construye el handler.
func NewConsumableHandler(catalog *consumable.CatalogUseCase, stock *consumable.StockUseCase) *ConsumableHandler {
	return &ConsumableHandler{catalog: catalog, stock: stock}
}

// Create godoc
// @Summary      Crear consumible
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsumableRequest  true  "Datos del consumible"
// @Success      201   {object}  dto.ConsumableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumables [post]
func (h *ConsumableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsumableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	out, err := h.catalog.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener consumible por ID
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consumible"
// @Success      200  {object}  dto.ConsumableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumables/{id} [get]
func (h *ConsumableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.catalog.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consumible no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar consumibles
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsumableResponse
// @Router       /api/consumables [get]
func (h *ConsumableHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.catalog.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar consumible
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumible"
// @Param        body  body  dto.UpdateConsumableRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ConsumableResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consumables/{id} [put]
func (h *ConsumableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConsumableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalog.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consumible no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar consumible
// @Tags         consumables
// @Security     Bearer
// @Param        id  path  string  true  "ID del consumible"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/consumables/{id} [delete]
func (h *ConsumableHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restock godoc
// @Summary      Reabastecer stock (penambahan)
// @Description  Suma cantidad al saldo y registra una entrada en el ledger, en una transacción.
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumible"
// @Param        body  body  dto.StockTransactionRequest  true  "Ubicación y cantidad"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consumables/{id}/restock [post]
func (h *ConsumableHandler) Restock(c *fiber.Ctx) error {
	var in dto.StockTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stock.Restock(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Usage godoc
// @Summary      Registrar consumo (pengambilan)
// @Description  Resta cantidad del saldo y registra una entrada en el ledger, en una transacción. 409 si el saldo no alcanza.
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumible"
// @Param        body  body  dto.StockTransactionRequest  true  "Ubicación y cantidad"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumables/{id}/usage [post]
func (h *ConsumableHandler) Usage(c *fiber.Ctx) error {
	var in dto.StockTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stock.Use(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logs godoc
// @Summary      Ledger de un consumible
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del consumible"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.ConsumableLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumables/{id}/logs [get]
func (h *ConsumableHandler) Logs(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.stock.Logs(c.UserContext(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BelowReorder godoc
// @Summary      Consumibles bajo el punto de reorden
// @Description  Incluye cantidad sugerida de pedido y prioridad (1 = más urgente).
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Success      200  {array}  dto.BelowReorderResponse
// @Router       /api/consumables/below-reorder [get]
func (h *ConsumableHandler) BelowReorder(c *fiber.Ctx) error {
	out, err := h.stock.BelowReorder(c.UserContext(), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
