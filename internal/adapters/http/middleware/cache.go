package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ReferenceDataCache marks successful reference-data GETs cacheable.
// Setups and setup details change rarely; units and equipment do not
// go through here.
func ReferenceDataCache(maxAgeSeconds int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() == fiber.MethodGet && c.Response().StatusCode() == fiber.StatusOK {
			c.Set("Cache-Control", "private, max-age="+strconv.Itoa(maxAgeSeconds))
		}

		return err
	}
}

// NoCacheHeaders sets no-cache headers for auth-sensitive responses
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
