package middleware

import (
	"strings"

	"navims-backend/internal/config"
	"navims-backend/internal/pkg/jwt"
	"navims-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware requires a valid Bearer token and attaches its claims
// to the request context. Verification is stateless and re-evaluated
// from scratch on every request.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Access denied. No token provided.")
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.Validate(token, cfg.JWT.Secret)
		if err != nil {
			// Distinct messages so clients can tell "log in again"
			// from "token malformed"
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Token expired. Please login again.")
			}
			return response.Unauthorized(c, "Invalid token. Please login again.")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware restricts access to the given roles. An empty list
// admits any authenticated role.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Authentication required.")
		}

		if len(allowedRoles) == 0 {
			return c.Next()
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Access forbidden. Insufficient permissions.")
	}
}

// AdminOnly allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware("admin")
}
