package handlers

import (
	"strconv"

	"navims-backend/internal/core/services"
	"navims-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard aggregation endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns total active equipment and per-status buckets
// @Summary Dashboard stats
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching dashboard stats", err)
	}
	return response.Success(c, "", stats)
}

// GetEquipmentByType returns active equipment counts grouped by type
func (h *DashboardHandler) GetEquipmentByType(c *fiber.Ctx) error {
	rows, err := h.dashboardService.GetEquipmentByType(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching equipment by type", err)
	}
	return response.List(c, rows, len(rows))
}

// GetEquipmentByStatus returns active equipment counts grouped by status
func (h *DashboardHandler) GetEquipmentByStatus(c *fiber.Ctx) error {
	rows, err := h.dashboardService.GetEquipmentByStatus(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching equipment by status", err)
	}
	return response.List(c, rows, len(rows))
}

// GetEquipmentByCommand returns per-command active equipment counts,
// zero-count commands excluded
// @Summary Equipment by command
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/dashboard/equipment-by-command [get]
func (h *DashboardHandler) GetEquipmentByCommand(c *fiber.Ctx) error {
	rows, err := h.dashboardService.GetEquipmentByCommand(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching equipment by command", err)
	}
	return response.List(c, rows, len(rows))
}

// GetEquipmentByUnitsInCommand returns per-unit counts inside one command
func (h *DashboardHandler) GetEquipmentByUnitsInCommand(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("commandId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid command ID")
	}

	rows, err := h.dashboardService.GetEquipmentByUnitsInCommand(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Error fetching equipment by units", err)
	}
	return response.List(c, rows, len(rows))
}
