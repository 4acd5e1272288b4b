package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/application/dto"
	"github.com/sandunudayakanthaproducts/chandima-cafe/pkg/authtoken"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID = "user_id"
	LocalActor  = "actor"
)

// AuthMiddleware validates the Bearer token and stores the acting user on the
// request context. Every stock mutation records this actor.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, name, err := authtoken.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalActor, name)
		return c.Next()
	}
}

// GetActor returns the acting user's name from the context (set by the auth
// middleware).
func GetActor(c *fiber.Ctx) string {
	v := c.Locals(LocalActor)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
