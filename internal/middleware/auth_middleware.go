package middleware

import (
	"github.com/gofiber/fiber/v2"

	"hotelier/internal/services"
)

// AuthRequired is a Fiber middleware that resolves the x-access-token
// header to an identity. A missing token is rejected with 403 before
// any verification is attempted; an invalid or expired one with 401.
// On success the claims are attached to the request context for
// downstream handlers.
func AuthRequired(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("x-access-token")
		if token == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "A token is required for authentication",
				"data":    nil,
			})
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid Token",
				"data":    nil,
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}
