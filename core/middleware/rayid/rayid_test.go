package rayid_test

import (
	"net/http/httptest"
	"testing"

	"url-reconciler/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	var seen string
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		seen = rayid.FromCtx(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		header := resp.Header.Get(rayid.HeaderName)
		_, parseErr := uuid.Parse(header)
		assert.NoError(t, parseErr)
		assert.Equal(t, header, seen)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-1")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "upstream-1", resp.Header.Get(rayid.HeaderName))
		assert.Equal(t, "upstream-1", seen)
	})
}
