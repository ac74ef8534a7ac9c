package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/adapters/persistence/repositories"
	"navims-backend/internal/config"
	"navims-backend/internal/core/services"
	"navims-backend/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 24,
		},
	}
}

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()

	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)

	hash, err := password.Hash("secret123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		Username: "jdoe",
		Password: hash,
		FullName: "John Doe",
		Role:     "user",
	}))

	handler := NewAuthHandler(services.NewAuthService(userRepo, testConfig()))

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestLoginEndpoint(t *testing.T) {
	app := newLoginApp(t)

	status, payload := postLogin(t, app, `{"username":"jdoe","password":"secret123"}`)
	require.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Login successful", payload["message"])
	assert.NotEmpty(t, payload["token"], "token is returned at the envelope top level")

	user, ok := payload["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jdoe", user["Username"])
	assert.NotContains(t, user, "Password", "password never leaves the server")
	assert.NotContains(t, user, "password")
}

func TestLoginEndpointValidation(t *testing.T) {
	app := newLoginApp(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing password", `{"username":"jdoe"}`, fiber.StatusBadRequest},
		{"missing username", `{"password":"secret123"}`, fiber.StatusBadRequest},
		{"empty body", `{}`, fiber.StatusBadRequest},
		{"wrong password", `{"username":"jdoe","password":"nope12"}`, fiber.StatusUnauthorized},
		{"unknown user", `{"username":"ghost","password":"secret123"}`, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := postLogin(t, app, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, false, payload["success"])
			assert.NotContains(t, payload, "token")
		})
	}
}
