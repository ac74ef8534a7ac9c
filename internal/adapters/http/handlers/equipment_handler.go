package handlers

import (
	"errors"
	"strconv"
	"strings"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/pkg/pagination"
	"navims-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EquipmentHandler handles equipment inventory endpoints
type EquipmentHandler struct {
	equipmentRepo *repositories.EquipmentRepository
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(equipmentRepo *repositories.EquipmentRepository) *EquipmentHandler {
	return &EquipmentHandler{equipmentRepo: equipmentRepo}
}

// ListEquipments lists equipment with pagination, newest first
// @Summary List equipment
// @Tags Equipments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /api/equipments [get]
func (h *EquipmentHandler) ListEquipments(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	rows, total, err := h.equipmentRepo.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Error fetching equipments", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(rows),
		"data":    rows,
		"meta":    pagination.GetMeta(params, total),
	})
}

// GetEquipment gets an equipment record by ID
func (h *EquipmentHandler) GetEquipment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid equipment ID")
	}

	row, err := h.equipmentRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Equipment not found")
		}
		return response.InternalServerError(c, "Error fetching equipment", err)
	}
	return response.Success(c, "", row)
}

// GetEquipmentBySerial gets an equipment record by serial number
func (h *EquipmentHandler) GetEquipmentBySerial(c *fiber.Ctx) error {
	serialNo := strings.TrimSpace(c.Params("serialNo"))
	if serialNo == "" {
		return response.BadRequest(c, "Serial number is required")
	}

	row, err := h.equipmentRepo.GetBySerialNo(c.Context(), serialNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Equipment not found")
		}
		return response.InternalServerError(c, "Error fetching equipment", err)
	}
	return response.Success(c, "", row)
}

// GetEquipmentsByType lists equipment of one equipment type
func (h *EquipmentHandler) GetEquipmentsByType(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("typeId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid equipment type ID")
	}

	rows, err := h.equipmentRepo.ListByType(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Error fetching equipments", err)
	}
	return response.List(c, rows, len(rows))
}

// SearchEquipments matches equipment name, serial no, make/model or
// type name against the q query parameter
// @Summary Search equipment
// @Tags Equipments
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} response.Response
// @Router /api/equipments/search [get]
func (h *EquipmentHandler) SearchEquipments(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return response.BadRequest(c, "Search term is required")
	}

	rows, err := h.equipmentRepo.Search(c.Context(), term)
	if err != nil {
		return response.InternalServerError(c, "Error searching equipments", err)
	}
	return response.List(c, rows, len(rows))
}

// CreateEquipment creates a new equipment record. The authenticated
// user is recorded as creator.
// @Summary Create equipment
// @Tags Equipments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.Equipment true "Equipment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/equipments [post]
func (h *EquipmentHandler) CreateEquipment(c *fiber.Ctx) error {
	var equipment models.Equipment
	if err := c.BodyParser(&equipment); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	equipment.Equipment = strings.TrimSpace(equipment.Equipment)
	if equipment.Equipment == "" {
		return response.BadRequest(c, "Equipment name is required")
	}
	if equipment.EquipmentTypeSetupDetailID == 0 {
		return response.BadRequest(c, "Equipment type is required")
	}

	equipment.EquipmentID = 0
	equipment.IsActive = true
	if userID, ok := c.Locals("userID").(uint); ok {
		equipment.CreatedBy = &userID
	}

	if err := h.equipmentRepo.Create(c.Context(), &equipment); err != nil {
		return response.InternalServerError(c, "Error creating equipment", err)
	}

	return response.Created(c, "Equipment created successfully", equipment)
}

// UpdateEquipment updates an equipment record. CreatedBy is never
// rewritten on update.
func (h *EquipmentHandler) UpdateEquipment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid equipment ID")
	}

	existing, err := h.equipmentRepo.GetModelByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Equipment not found")
		}
		return response.InternalServerError(c, "Error updating equipment", err)
	}

	var equipment models.Equipment
	if err := c.BodyParser(&equipment); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	equipment.Equipment = strings.TrimSpace(equipment.Equipment)
	if equipment.Equipment == "" {
		return response.BadRequest(c, "Equipment name is required")
	}
	if equipment.EquipmentTypeSetupDetailID == 0 {
		return response.BadRequest(c, "Equipment type is required")
	}

	equipment.EquipmentID = existing.EquipmentID
	equipment.CreatedBy = existing.CreatedBy
	equipment.CreatedAt = existing.CreatedAt

	if err := h.equipmentRepo.Update(c.Context(), &equipment); err != nil {
		return response.InternalServerError(c, "Error updating equipment", err)
	}

	return response.Success(c, "Equipment updated successfully", equipment)
}

// DeleteEquipment hard deletes an equipment record
// @Summary Delete equipment
// @Tags Equipments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/equipments/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid equipment ID")
	}

	if err := h.equipmentRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Equipment not found")
		}
		return response.InternalServerError(c, "Error deleting equipment", err)
	}

	return response.Success(c, "Equipment deleted successfully", nil)
}
