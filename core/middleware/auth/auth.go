// Package auth implements API key protection for the HTTP surface.
package auth

import "github.com/gofiber/fiber/v2"

// Header carries the API key on protected requests.
const Header = "X-API-Key"

// Config holds the middleware configuration.
type Config struct {
	// ApiKey is the expected key. Empty disables the check entirely.
	ApiKey string
}

// New creates the API key middleware.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(Header) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
