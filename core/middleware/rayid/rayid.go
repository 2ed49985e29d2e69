package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// HeaderName carries the ray ID on requests and responses.
	HeaderName = "X-Ray-ID"
	// LocalsKey is where the ray ID is stored on the Fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns every request a ray ID. An incoming
// X-Ray-ID header is kept so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := utils.CopyString(c.Get(HeaderName))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

// FromCtx returns the ray ID of the current request, or "".
func FromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(LocalsKey).(string)
	return rid
}
