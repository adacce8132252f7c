package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/dcastano/almacen-api/internal/application/analytics"
	"github.com/dcastano/almacen-api/internal/application/dto"
)

// DashboardHandler maneja el resumen derivado del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (totales, lowStockItems, soonToExpire,
// recentStockOut[5]). Se recalcula en cada petición; el fetch completo tiene
// un tope de 15 segundos.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
