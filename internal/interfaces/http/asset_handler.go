package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

// AssetHandler maneja las peticiones HTTP para Asset (protegido), incluidas la
// registración masiva por sala y la vista previa del próximo serial.
type AssetHandler struct {
	uc     *assets.AssetUseCase
	bulk   *assets.BulkRegisterUseCase
	serial *assets.SerialUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *assets.AssetUseCase, bulk *assets.BulkRegisterUseCase, serial *assets.SerialUseCase) *AssetHandler {
	return &AssetHandler{uc: uc, bulk: bulk, serial: serial}
}

// Create godoc
// @Summary      Registrar activo individual
// @Description  Genera el serial con alcance de producto: {CODE}-{seq}.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.LocationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y location_id son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BulkRegister godoc
// @Summary      Registración masiva por sala
// @Description  Inserta todas las unidades del lote en una transacción: o entran todas o ninguna. Seriales con alcance de ubicación: G{edificio}/L{piso}/R{sala}/{CODE}{seq}.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkRegisterRequest  true  "Ubicación e ítems del lote"
// @Success      201   {object}  dto.BulkRegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/bulk [post]
func (h *AssetHandler) BulkRegister(c *fiber.Ctx) error {
	var in dto.BulkRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bulk.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// NextSerial godoc
// @Summary      Próximo serial (solo lectura)
// @Description  Con location_id devuelve el serial con alcance de ubicación; sin él, el de alcance de producto. No reserva el número.
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  true   "ID del producto"
// @Param        location_id  query  string  false  "ID de la ubicación"
// @Success      200  {object}  dto.NextSerialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/next-serial [get]
func (h *AssetHandler) NextSerial(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido", Field: "product_id"})
	}
	locationID := c.Query("location_id")

	var (
		sn  string
		err error
	)
	if locationID != "" {
		sn, err = h.serial.NextLocationSerial(c.UserContext(), productID, locationID)
	} else {
		sn, err = h.serial.NextProductSerial(c.UserContext(), productID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NextSerialResponse{SerialNumber: sn})
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar activos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        condition    query  string  false  "Filtrar por condición"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.AssetListResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	filter := repository.AssetFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		Condition:  c.Query("condition"),
	}
	out, err := h.uc.List(c.UserContext(), filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar activo
// @Description  Condición, ubicación, precio y atributos son mutables; serial y producto no.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo
// @Tags         assets
// @Security     Bearer
// @Param        id  path  string  true  "ID del activo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
