package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"hotelier/internal/models"
	"hotelier/internal/repositories"
	"hotelier/internal/services"
	"hotelier/internal/validation"
)

// RoomHandler handles HTTP requests for the room catalog.
type RoomHandler struct {
	service *services.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RegisterRoutes registers the room routes.
func (h *RoomHandler) RegisterRoutes(router fiber.Router) {
	roomRoutes := router.Group("/rooms")
	roomRoutes.Get("/", h.HandleGetRooms)
	roomRoutes.Post("/", h.HandleCreateRoom)
	roomRoutes.Get("/:id", h.HandleGetRoomByID)
	roomRoutes.Put("/:id", h.HandleUpdateRoom)
}

// HandleGetRooms returns the full room catalog, unfiltered.
func (h *RoomHandler) HandleGetRooms(c *fiber.Ctx) error {
	rooms, err := h.service.GetAllRooms()
	if err != nil {
		log.Printf("Error getting all rooms: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Rooms retrieved successfully.",
		"data":    fiber.Map{"rooms": rooms},
	})
}

// CreateRoomRequest is the request body for room creation.
type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" validate:"required"`
	RoomType      string  `json:"room_type" validate:"required"`
	Description   string  `json:"description"`
	Amenities     string  `json:"amenities"`
	PricePerNight float64 `json:"price_per_night" validate:"required,min=100,max=10000"`
	IsAvailable   *bool   `json:"is_available"`
}

// HandleCreateRoom inserts a new room. Availability defaults to false
// when absent. A duplicate room_number is a 409, never a silent accept.
func (h *RoomHandler) HandleCreateRoom(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	room := &models.Room{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		Description:   req.Description,
		Amenities:     req.Amenities,
		PricePerNight: req.PricePerNight,
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	created, err := h.service.CreateRoom(room)
	if err != nil {
		return h.respondRoomError(c, 0, err)
	}

	return c.JSON(fiber.Map{
		"message": "Room created successfully.",
		"data":    fiber.Map{"room": created},
	})
}

// HandleGetRoomByID retrieves a single room.
func (h *RoomHandler) HandleGetRoomByID(c *fiber.Ctx) error {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		return validationFailed(c, map[string]string{"id": err.Error()})
	}

	room, err := h.service.GetRoomByID(roomID)
	if err != nil {
		return h.respondRoomError(c, roomID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Room retrieved successfully.",
		"data":    fiber.Map{"room": room},
	})
}

// UpdateRoomRequest is the partial request body for room updates. Only
// the provided fields are written.
type UpdateRoomRequest struct {
	RoomNumber    *string  `json:"room_number"`
	RoomType      *string  `json:"room_type"`
	Description   *string  `json:"description"`
	Amenities     *string  `json:"amenities"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,min=100,max=10000"`
	IsAvailable   *bool    `json:"is_available"`
}

// Fields returns the column/value pairs present in the request.
func (r UpdateRoomRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.RoomNumber != nil {
		fields["room_number"] = *r.RoomNumber
	}
	if r.RoomType != nil {
		fields["room_type"] = *r.RoomType
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Amenities != nil {
		fields["amenities"] = *r.Amenities
	}
	if r.PricePerNight != nil {
		fields["price_per_night"] = *r.PricePerNight
	}
	if r.IsAvailable != nil {
		fields["is_available"] = *r.IsAvailable
	}
	return fields
}

// HandleUpdateRoom applies a partial update. A body with no updatable
// field is rejected at request level after field validation passes.
func (h *RoomHandler) HandleUpdateRoom(c *fiber.Ctx) error {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		return validationFailed(c, map[string]string{"id": err.Error()})
	}

	var req UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return validationFailed(c, map[string]string{"room_number": "body is required"})
	}

	room, err := h.service.UpdateRoom(roomID, fields)
	if err != nil {
		return h.respondRoomError(c, roomID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Room updated successfully.",
		"data":    fiber.Map{"room": room},
	})
}

// respondRoomError maps store errors for room operations: missing rooms
// are 404, duplicate room numbers are 409, anything else is a 500 with
// the store message passed through.
func (h *RoomHandler) respondRoomError(c *fiber.Ctx, roomID uint, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No room found with %d", roomID),
			"data":    nil,
		})
	case errors.Is(err, repositories.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Duplicate entry in rooms. Please check room_number",
			"data":    nil,
		})
	default:
		log.Printf("Room store error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"data":    nil,
		})
	}
}
