package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// validationFailed shapes a field-level validation failure. Every
// violated field appears in data.fields with its message.
func validationFailed(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"data":    fiber.Map{"fields": fields},
	})
}

// parseIDParam parses a numeric path parameter into a positive ID.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", name)
	}
	return uint(id), nil
}
