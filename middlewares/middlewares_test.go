package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"chodae.link/pkg/admission"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(strict bool, limit int) *fiber.App {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	guard := admission.NewGuard(admission.NewLimiter(nil, func() time.Time { return now }), strict)

	app := fiber.New()
	app.Use(Identity("X-User-Id"))
	app.Post("/items/:id",
		Admission(guard, ParamScope("item", "id"), admission.Config{Limit: limit, Window: time.Minute}),
		func(c *fiber.Ctx) error { return c.SendString("ok:" + UserID(c)) })
	app.Get("/private", AuthMiddleware, func(c *fiber.Ctx) error { return c.SendString(UserID(c)) })
	return app
}

func TestIdentityAndAuth(t *testing.T) {
	app := newGuardedApp(false, 10)

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("X-User-Id", "  user-1 ")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdmissionRateLimit(t *testing.T) {
	app := newGuardedApp(false, 2)

	send := func(id, ip string) int {
		req := httptest.NewRequest("POST", "/items/"+id, nil)
		req.Header.Set("X-Forwarded-For", ip)
		resp, err := app.Test(req)
		require.NoError(t, err)
		if resp.StatusCode == fiber.StatusTooManyRequests {
			assert.Equal(t, "60", resp.Header.Get("Retry-After"))
			assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
			assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))
		}
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send("a", "1.1.1.1"))
	assert.Equal(t, fiber.StatusOK, send("a", "1.1.1.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, send("a", "1.1.1.1"))
	// Farklı kapsam ve farklı istemci ayrı sayılır.
	assert.Equal(t, fiber.StatusOK, send("b", "1.1.1.1"))
	assert.Equal(t, fiber.StatusOK, send("a", "2.2.2.2"))
}

func TestAdmissionOrigin(t *testing.T) {
	app := newGuardedApp(true, 10)

	req := httptest.NewRequest("POST", "http://chodae.test/items/a", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("POST", "http://chodae.test/items/a", nil)
	req.Header.Set("Origin", "https://chodae.test")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Origin yoksa Referer host'u karşılaştırılır.
	req = httptest.NewRequest("POST", "http://chodae.test/items/a", nil)
	req.Header.Set("Referer", "https://chodae.test/i/abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "http://chodae.test/items/a", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
