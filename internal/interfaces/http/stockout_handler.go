package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/usecase"
	"github.com/dcastano/almacen-api/internal/domain"
)

// StockOutHandler maneja el log de salidas de stock.
type StockOutHandler struct {
	uc *usecase.StockOutUseCase
}

// NewStockOutHandler construye el handler.
func NewStockOutHandler(uc *usecase.StockOutUseCase) *StockOutHandler {
	return &StockOutHandler{uc: uc}
}

// List godoc
// @Summary      Listar el log de salidas (más reciente primero)
// @Tags         stockout
// @Produce      json
// @Success      200  {array}  dto.StockOutResponse
// @Router       /api/stockout [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar una entrada en el log de salidas
// @Tags         stockout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockOutRequest  true  "product, quantity, timestamp opcional"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stockout [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto inválido o cantidad no positiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
