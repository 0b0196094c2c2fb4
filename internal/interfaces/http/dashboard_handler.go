package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/conectta/retaguarda/internal/application/analytics"
	"github.com/conectta/retaguarda/internal/application/dto"
)

// DashboardHandler maneja los endpoints del panel (solo ADMINISTRADOR).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Totales generales del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// GetSalesStats godoc
// @Summary      Ventas de hoy y de ayer
// @Description  Cada bloque cubre un día calendario completo en hora local
//               del servidor (medianoche a medianoche).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]dto.VendaStatsDTO
// @Router       /api/dashboard/vendas-stats [get]
func (h *DashboardHandler) GetSalesStats(c *fiber.Ctx) error {
	now := time.Now()

	hoje, err := h.uc.GetSalesStats(c.Context(), now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	ontem, err := h.uc.GetSalesStats(c.Context(), now.AddDate(0, 0, -1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(fiber.Map{
		"hoje":  hoje,
		"ontem": ontem,
	})
}

// GetTopProducts godoc
// @Summary      Top 5 productos por unidades vendidas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopProdutoDTO
// @Router       /api/dashboard/top-produtos [get]
func (h *DashboardHandler) GetTopProducts(c *fiber.Ctx) error {
	top, err := h.uc.GetTopProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(top)
}
