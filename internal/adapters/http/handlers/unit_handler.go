package handlers

import (
	"errors"
	"strconv"
	"strings"

	"navims-backend/internal/core/services"
	"navims-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UnitHandler handles organizational unit endpoints
type UnitHandler struct {
	unitService *services.UnitService
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(unitService *services.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// ListUnits lists all active units
// @Summary List units
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/units [get]
func (h *UnitHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.unitService.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching units", err)
	}
	return response.List(c, units, len(units))
}

// GetUnit gets a unit by ID, active or not
func (h *UnitHandler) GetUnit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid unit ID")
	}

	unit, err := h.unitService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			return response.NotFound(c, "Unit not found")
		}
		return response.InternalServerError(c, "Error fetching unit", err)
	}
	return response.Success(c, "", unit)
}

// GetUnitsByParent lists active units directly under a parent
func (h *UnitHandler) GetUnitsByParent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("parentId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid parent unit ID")
	}

	units, err := h.unitService.ListByParent(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Error fetching units", err)
	}
	return response.List(c, units, len(units))
}

// GetUnitsByCompany lists active units by company discriminator
func (h *UnitHandler) GetUnitsByCompany(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("companyId"))
	if err != nil {
		return response.BadRequest(c, "Invalid company ID")
	}

	units, err := h.unitService.ListByCompany(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Error fetching units", err)
	}
	return response.List(c, units, len(units))
}

// GetCommands lists the active command units
func (h *UnitHandler) GetCommands(c *fiber.Ctx) error {
	commands, err := h.unitService.ListCommands(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching commands", err)
	}
	return response.List(c, commands, len(commands))
}

// GetUnitsByCommand lists a command's units, the command itself included
func (h *UnitHandler) GetUnitsByCommand(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("commandId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid command ID")
	}

	units, err := h.unitService.ListByCommand(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Error fetching units", err)
	}
	return response.List(c, units, len(units))
}

// CreateUnit creates a new unit
// @Summary Create unit
// @Tags Units
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UnitInput true "Unit data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/units [post]
func (h *UnitHandler) CreateUnit(c *fiber.Ctx) error {
	var input services.UnitInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.UnitCode = strings.TrimSpace(input.UnitCode)
	input.UnitName = strings.TrimSpace(input.UnitName)
	if input.UnitCode == "" || input.UnitName == "" {
		return response.BadRequest(c, "Unit code and unit name are required")
	}

	unit, err := h.unitService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUnitCode) {
			return response.BadRequest(c, "Unit Code '"+input.UnitCode+"' already exists. Please use a unique unit code.")
		}
		return response.InternalServerError(c, "Error creating unit", err)
	}

	return response.Created(c, "Unit created successfully", unit)
}

// UpdateUnit updates a unit
func (h *UnitHandler) UpdateUnit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid unit ID")
	}

	var input services.UnitInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.UnitCode = strings.TrimSpace(input.UnitCode)
	input.UnitName = strings.TrimSpace(input.UnitName)
	if input.UnitCode == "" || input.UnitName == "" {
		return response.BadRequest(c, "Unit code and unit name are required")
	}

	unit, err := h.unitService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnitNotFound):
			return response.NotFound(c, "Unit not found")
		case errors.Is(err, services.ErrDuplicateUnitCode):
			return response.BadRequest(c, "Unit Code '"+input.UnitCode+"' already exists. Please use a unique unit code.")
		default:
			return response.InternalServerError(c, "Error updating unit", err)
		}
	}

	return response.Success(c, "Unit updated successfully", unit)
}

// DeleteUnit deactivates a unit
// @Summary Delete unit
// @Tags Units
// @Produce json
// @Security BearerAuth
// @Param id path int true "Unit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid unit ID")
	}

	if err := h.unitService.SoftDelete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrUnitNotFound) {
			return response.NotFound(c, "Unit not found")
		}
		return response.InternalServerError(c, "Error deleting unit", err)
	}

	return response.Success(c, "Unit deleted successfully", nil)
}
