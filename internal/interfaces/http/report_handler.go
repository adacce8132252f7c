package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/usecase"
)

// InventoryReportGenerator genera el PDF del inventario. Lo implementa
// pdf.MarotoReportGenerator.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, appName string, products []dto.ProductResponse) ([]byte, error)
}

// ReportHandler maneja la descarga del reporte PDF del inventario (admin).
type ReportHandler struct {
	productUC *usecase.ProductUseCase
	generator InventoryReportGenerator
	appName   string
}

// NewReportHandler construye el handler.
func NewReportHandler(productUC *usecase.ProductUseCase, generator InventoryReportGenerator, appName string) *ReportHandler {
	return &ReportHandler{productUC: productUC, generator: generator, appName: appName}
}

// InventoryPDF godoc
// @Summary      Descargar el inventario completo en PDF (admin)
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	products, err := h.productUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.generator.GenerateInventoryReport(c.Context(), h.appName, products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
