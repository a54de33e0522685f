package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"cnc-assist/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdminApp(secret string) *fiber.App {
	app := fiber.New()
	admin := app.Group("/admin", AdminAuth(auth.NewSharedSecret(secret), zap.NewNop()))
	admin.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	admin.Post("/action", func(c *fiber.Ctx) error {
		return c.SendString("done")
	})
	return app
}

func TestAdminAuthQueryPassword(t *testing.T) {
	app := newAdminApp("s3cret")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/ping?password=s3cret", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/ping?password=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthBodyPassword(t *testing.T) {
	app := newAdminApp("s3cret")

	req := httptest.NewRequest("POST", "/admin/action", strings.NewReader(`{"password":"s3cret","qaId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/admin/action", strings.NewReader(`{"qaId":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthUnconfiguredSecretRejectsAll(t *testing.T) {
	app := newAdminApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/ping?password=", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/ping?password=anything", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
