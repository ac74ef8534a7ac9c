package handlers

import (
	"errors"
	"strconv"
	"strings"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupHandler handles the two-level reference taxonomy endpoints
type SetupHandler struct {
	setupRepo  *repositories.SetupRepository
	detailRepo *repositories.SetupDetailRepository
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(setupRepo *repositories.SetupRepository, detailRepo *repositories.SetupDetailRepository) *SetupHandler {
	return &SetupHandler{setupRepo: setupRepo, detailRepo: detailRepo}
}

// SetupRequest represents setup create/update request body
type SetupRequest struct {
	SetupName string `json:"setupName"`
}

// SetupDetailRequest represents setup detail create/update request body
type SetupDetailRequest struct {
	SMSID           uint   `json:"smsId"`
	SetupDetailName string `json:"setupDetailName"`
}

// ListSetups lists all setups
// @Summary List setups
// @Tags Setups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/setups [get]
func (h *SetupHandler) ListSetups(c *fiber.Ctx) error {
	setups, err := h.setupRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching setups", err)
	}
	return response.List(c, setups, len(setups))
}

// GetSetup gets a setup by ID
func (h *SetupHandler) GetSetup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup ID")
	}

	setup, err := h.setupRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Setup not found")
		}
		return response.InternalServerError(c, "Error fetching setup", err)
	}
	return response.Success(c, "", setup)
}

// CreateSetup creates a new setup
func (h *SetupHandler) CreateSetup(c *fiber.Ctx) error {
	var req SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.SetupName = strings.TrimSpace(req.SetupName)
	if req.SetupName == "" {
		return response.BadRequest(c, "Setup name is required")
	}

	if _, err := h.setupRepo.GetByName(c.Context(), req.SetupName); err == nil {
		return response.BadRequest(c, "Setup '"+req.SetupName+"' already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Error creating setup", err)
	}

	setup := &models.Setup{SetupName: req.SetupName}
	if err := h.setupRepo.Create(c.Context(), setup); err != nil {
		return response.InternalServerError(c, "Error creating setup", err)
	}

	return response.Created(c, "Setup created successfully", setup)
}

// UpdateSetup updates a setup
func (h *SetupHandler) UpdateSetup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup ID")
	}

	var req SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.SetupName = strings.TrimSpace(req.SetupName)
	if req.SetupName == "" {
		return response.BadRequest(c, "Setup name is required")
	}

	setup, err := h.setupRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Setup not found")
		}
		return response.InternalServerError(c, "Error updating setup", err)
	}

	if req.SetupName != setup.SetupName {
		existing, err := h.setupRepo.GetByName(c.Context(), req.SetupName)
		if err == nil && existing.SMSID != setup.SMSID {
			return response.BadRequest(c, "Setup '"+req.SetupName+"' already exists")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.InternalServerError(c, "Error updating setup", err)
		}
	}

	setup.SetupName = req.SetupName
	if err := h.setupRepo.Update(c.Context(), setup); err != nil {
		return response.InternalServerError(c, "Error updating setup", err)
	}

	return response.Success(c, "Setup updated successfully", setup)
}

// DeleteSetup hard deletes a setup; its details cascade
func (h *SetupHandler) DeleteSetup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup ID")
	}

	if err := h.setupRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Setup not found")
		}
		return response.InternalServerError(c, "Error deleting setup", err)
	}

	return response.Success(c, "Setup deleted successfully", nil)
}

// ListSetupDetails lists all setup details with setup names joined
// @Summary List setup details
// @Tags Setups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/setup-details [get]
func (h *SetupHandler) ListSetupDetails(c *fiber.Ctx) error {
	details, err := h.detailRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching setup details", err)
	}
	return response.List(c, details, len(details))
}

// GetSetupDetail gets a setup detail by ID
func (h *SetupHandler) GetSetupDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup detail ID")
	}

	detail, err := h.detailRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Setup detail not found")
		}
		return response.InternalServerError(c, "Error fetching setup detail", err)
	}
	return response.Success(c, "", detail)
}

// GetSetupDetailsBySetup lists details under one setup
func (h *SetupHandler) GetSetupDetailsBySetup(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("smsId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup ID")
	}

	details, err := h.detailRepo.ListBySMSID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Error fetching setup details", err)
	}
	return response.List(c, details, len(details))
}

// CreateSetupDetail creates a detail under an existing setup
func (h *SetupHandler) CreateSetupDetail(c *fiber.Ctx) error {
	var req SetupDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.SetupDetailName = strings.TrimSpace(req.SetupDetailName)
	if req.SMSID == 0 || req.SetupDetailName == "" {
		return response.BadRequest(c, "Setup ID and detail name are required")
	}

	if _, err := h.setupRepo.GetByID(c.Context(), req.SMSID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.BadRequest(c, "Setup not found")
		}
		return response.InternalServerError(c, "Error creating setup detail", err)
	}

	detail := &models.SetupDetail{
		SMSID:           req.SMSID,
		SetupDetailName: req.SetupDetailName,
	}
	if err := h.detailRepo.Create(c.Context(), detail); err != nil {
		return response.InternalServerError(c, "Error creating setup detail", err)
	}

	return response.Created(c, "Setup detail created successfully", detail)
}

// UpdateSetupDetail updates a setup detail
func (h *SetupHandler) UpdateSetupDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup detail ID")
	}

	var req SetupDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.SetupDetailName = strings.TrimSpace(req.SetupDetailName)
	if req.SetupDetailName == "" {
		return response.BadRequest(c, "Detail name is required")
	}

	detail, err := h.detailRepo.GetModelByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Setup detail not found")
		}
		return response.InternalServerError(c, "Error updating setup detail", err)
	}

	if req.SMSID != 0 && req.SMSID != detail.SMSID {
		if _, err := h.setupRepo.GetByID(c.Context(), req.SMSID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.BadRequest(c, "Setup not found")
			}
			return response.InternalServerError(c, "Error updating setup detail", err)
		}
		detail.SMSID = req.SMSID
	}
	detail.SetupDetailName = req.SetupDetailName

	if err := h.detailRepo.Update(c.Context(), detail); err != nil {
		return response.InternalServerError(c, "Error updating setup detail", err)
	}

	return response.Success(c, "Setup detail updated successfully", detail)
}

// DeleteSetupDetail hard deletes a setup detail
func (h *SetupHandler) DeleteSetupDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid setup detail ID")
	}

	if err := h.detailRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Setup detail not found")
		}
		return response.InternalServerError(c, "Error deleting setup detail", err)
	}

	return response.Success(c, "Setup detail deleted successfully", nil)
}
