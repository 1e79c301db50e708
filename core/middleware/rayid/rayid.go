package rayid

import (
	"strings"

	"asset-loader/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header echoing the request's ray id.
const HeaderName = "X-Ray-ID"

// New returns a middleware assigning every request a ray id. A valid UUID
// sent by the client in X-Ray-ID is kept so traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// c.Get aliases the request buffer, which fiber reuses.
		rid := strings.Clone(c.Get(HeaderName))
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
