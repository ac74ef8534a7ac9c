package handlers

import (
	"errors"
	"strconv"
	"strings"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/pkg/pagination"
	"navims-backend/internal/pkg/password"
	"navims-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// UserRequest represents user create/update request body
type UserRequest struct {
	Username             string `json:"username"`
	Password             string `json:"password"`
	FullName             string `json:"fullName"`
	Role                 string `json:"role"`
	CommandSetupDetailID *uint  `json:"commandSetupDetailID"`
}

// ListUsers lists users with pagination
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.userRepo.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Error fetching users", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(users),
		"data":    users,
		"meta":    pagination.GetMeta(params, total),
	})
}

// GetUser gets a user by ID
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userRepo.GetRowByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Error fetching user", err)
	}

	return response.Success(c, "", user)
}

// GetUsersByCommand lists users attached to a command classification
func (h *UserHandler) GetUsersByCommand(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("commandSetupDetailId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid command ID")
	}

	users, err := h.userRepo.ListByCommandDetail(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Error fetching users", err)
	}

	return response.List(c, users, len(users))
}

// CreateUser creates a new user (admin only)
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UserRequest true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.FullName == "" {
		return response.BadRequest(c, "Username, password and full name are required")
	}
	if !password.ValidatePassword(req.Password) {
		return response.BadRequest(c, "Password must be at least 6 characters")
	}

	exists, err := h.userRepo.ExistsByUsername(c.Context(), req.Username)
	if err != nil {
		return response.InternalServerError(c, "Error creating user", err)
	}
	if exists {
		return response.BadRequest(c, "Username '"+req.Username+"' already exists")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Error creating user", err)
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &models.User{
		Username:             req.Username,
		Password:             hashed,
		FullName:             req.FullName,
		Role:                 role,
		CommandSetupDetailID: req.CommandSetupDetailID,
	}

	if err := h.userRepo.Create(c.Context(), user); err != nil {
		return response.InternalServerError(c, "Error creating user", err)
	}

	return response.Created(c, "User created successfully", user.ToRow())
}

// UpdateUser updates a user (admin only). An empty password keeps the
// stored one.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Error updating user", err)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.FullName == "" {
		return response.BadRequest(c, "Username and full name are required")
	}

	if req.Username != user.Username {
		exists, err := h.userRepo.ExistsByUsername(c.Context(), req.Username)
		if err != nil {
			return response.InternalServerError(c, "Error updating user", err)
		}
		if exists {
			return response.BadRequest(c, "Username '"+req.Username+"' already exists")
		}
	}

	user.Username = req.Username
	user.FullName = req.FullName
	user.CommandSetupDetailID = req.CommandSetupDetailID
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		if !password.ValidatePassword(req.Password) {
			return response.BadRequest(c, "Password must be at least 6 characters")
		}
		hashed, err := password.Hash(req.Password)
		if err != nil {
			return response.InternalServerError(c, "Error updating user", err)
		}
		user.Password = hashed
	}

	if err := h.userRepo.Update(c.Context(), user); err != nil {
		return response.InternalServerError(c, "Error updating user", err)
	}

	return response.Success(c, "User updated successfully", user.ToRow())
}

// DeleteUser hard deletes a user (admin only)
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Error deleting user", err)
	}

	return response.Success(c, "User deleted successfully", nil)
}
