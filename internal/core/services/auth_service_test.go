package services

import (
	"context"
	"testing"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/pkg/jwt"
	"navims-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, repositories.UserRepository) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	svc := NewAuthService(userRepo, testConfig())

	hash, err := password.Hash("secret123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		Username: "jdoe",
		Password: hash,
		FullName: "John Doe",
		Role:     "admin",
	}))

	return svc, userRepo
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	result, err := svc.Login(context.Background(), &LoginInput{
		Username: "jdoe",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotNil(t, result.User)

	assert.Equal(t, "jdoe", result.User.Username)
	assert.Equal(t, "John Doe", result.User.FullName)
	assert.Equal(t, "admin", result.User.Role)

	// The issued token carries the user's identity and role
	claims, err := jwt.Validate(result.Token, testConfig().JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, result.User.UserID, claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "jdoe", "wrong-password"},
		{"unknown username", "nobody", "secret123"},
	}

	// Both cases fail with the same error so usernames cannot be probed
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &LoginInput{
				Username: tt.username,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestMe(t *testing.T) {
	svc, userRepo := newAuthFixture(t)

	user, err := userRepo.GetByUsername(context.Background(), "jdoe")
	require.NoError(t, err)

	row, err := svc.Me(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", row.Username)

	// Token subject deleted after issuance
	require.NoError(t, userRepo.Delete(context.Background(), user.UserID))
	_, err = svc.Me(context.Background(), user.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
