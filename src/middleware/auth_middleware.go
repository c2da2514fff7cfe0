package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ctrl-alt-elite/alumni-backend/src/lib"
)

// ProtectRoute is a middleware that checks for a valid JWT token and attaches
// the authenticated username to the request context
func ProtectRoute(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - No token provided",
		})
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - Invalid token format",
		})
	}

	claims, err := lib.VerifyJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - Invalid token",
		})
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized - Invalid token",
		})
	}

	c.Locals("username", username)

	return c.Next()
}
