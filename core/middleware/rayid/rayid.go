// Package rayid assigns every request a unique tracing id.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-ID"

// New creates the ray id middleware. An incoming id is honored so
// callers can correlate across services; otherwise one is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
