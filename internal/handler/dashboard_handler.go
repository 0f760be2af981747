package handler

import (
	"go-retail-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetMetrics returns the freshly computed dashboard snapshot.
// GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.service.GetMetrics()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute dashboard metrics"})
	}
	return c.JSON(metrics)
}
