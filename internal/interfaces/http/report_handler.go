package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/application/report"
)

// ReportHandler genera los reportes descargables de la página Reports.
type ReportHandler struct {
	uc *report.ShipmentReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ShipmentReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ShipmentsPDF genera y descarga el reporte de envíos en PDF.
func (h *ReportHandler) ShipmentsPDF(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shipments.pdf"`)
	return c.Send(out)
}
