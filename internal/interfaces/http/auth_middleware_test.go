package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sandunudayakanthaproducts/chandima-cafe/pkg/authtoken"
)

func protectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", AuthMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"actor": GetActor(c)})
	})
	return app
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := protectedApp("s3cret")

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	app := protectedApp("s3cret")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := protectedApp("s3cret")

	token, err := authtoken.Generate("s3cret", "u-1", "Kasun", "chandima-cafe", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := protectedApp("s3cret")

	token, err := authtoken.Generate("other", "u-1", "Kasun", "chandima-cafe", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
