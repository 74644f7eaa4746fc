package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"hotelier/internal/models"
	"hotelier/internal/services"
	"hotelier/internal/validation"
)

// AuthHandler handles HTTP requests for signup, login and password reset.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the authentication routes. These are the
// only non-root routes that do not require a token.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/reset_password", h.HandleResetPassword)
}

// SignupRequest is the request body for signup.
type SignupRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Name          string `json:"name" validate:"required,min=3"`
	ContactNumber string `json:"contact_number" validate:"required,len=10"`
	Address       string `json:"address" validate:"required"`
}

// HandleSignup registers a new user and issues a session token.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	user := &models.User{
		Email:         req.Email,
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	}

	created, token, err := h.authService.Signup(user, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User already exists. Please login.",
				"data":    nil,
			})
		}
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"data":    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully.",
		"data": fiber.Map{
			"user": created,
			"auth": fiber.Map{"token": token},
		},
	})
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleLogin authenticates a user and issues a session token. A
// missing account and a wrong password both come back as 400; the
// message is the only thing that differs.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return h.respondAuthError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User successfully logged in.",
		"data": fiber.Map{
			"user": user,
			"auth": fiber.Map{"token": token},
		},
	})
}

// ResetPasswordRequest is the request body for reset_password. The new
// password must differ from the old one.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	NewPassword string `json:"new_password" validate:"required,min=6,nefield=Password"`
}

// HandleResetPassword verifies the old password and replaces it.
func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	if err := h.authService.ResetPassword(req.Email, req.Password, req.NewPassword); err != nil {
		return h.respondAuthError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Password updated successfully. Please login.",
		"data":    nil,
	})
}

// respondAuthError maps auth domain errors to client failures and
// everything else to a server error.
func (h *AuthHandler) respondAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User account not exist.",
			"data":    nil,
		})
	case errors.Is(err, services.ErrCredentialMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User email or password match not found.",
			"data":    nil,
		})
	default:
		log.Printf("Auth error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"data":    nil,
		})
	}
}
