package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/application/report"
)

// ReportHandler maneja los reportes PDF (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Assets godoc
// @Summary      Recap PDF de activos por ubicación
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        location_id  query  string  true  "ID de la ubicación"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/assets [get]
func (h *ReportHandler) Assets(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id es requerido", Field: "location_id"})
	}
	pdfBytes, err := h.uc.AssetsByLocation(c.UserContext(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-activos.pdf"`)
	return c.Send(pdfBytes)
}
