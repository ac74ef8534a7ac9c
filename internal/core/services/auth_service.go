package services

import (
	"context"
	"errors"
	"log"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/config"
	"navims-backend/internal/pkg/jwt"
	"navims-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the issued token and the user without password
type LoginResult struct {
	Token string          `json:"token"`
	User  *models.UserRow `json:"user"`
}

// Login authenticates a user and issues a session token. Unknown
// username and wrong password fail identically so usernames cannot
// be enumerated.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.Generate(user.UserID, user.Username, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.ExpiryHours)
	if err != nil {
		return nil, err
	}

	log.Printf("user logged in: %s", user.Username)

	return &LoginResult{
		Token: token,
		User:  user.ToRow(),
	}, nil
}

// Me re-fetches the current user from storage by the token's subject id
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.UserRow, error) {
	row, err := s.userRepo.GetRowByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return row, nil
}
