package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"hotelier/internal/repositories"
	"hotelier/internal/services"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/:user_id", h.HandleGetUser)
}

// HandleGetUser retrieves a user by ID. The password digest never
// appears in the payload.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return validationFailed(c, map[string]string{"user_id": err.Error()})
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No user found with %d", userID),
				"data":    nil,
			})
		}
		log.Printf("Error getting user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{
		"message": "User retrieved successfully.",
		"data":    fiber.Map{"user": user},
	})
}
