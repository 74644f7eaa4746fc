package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"hotelier/internal/models"
	"hotelier/internal/repositories"
	"hotelier/internal/services"
	"hotelier/internal/validation"
)

// BookingHandler handles HTTP requests for bookings. Every operation is
// scoped to the authenticated identity injected by the auth middleware.
type BookingHandler struct {
	service *services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers the booking routes.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Get("/", h.HandleGetBookings)
	bookingRoutes.Get("/:booking_id", h.HandleGetBookingByID)
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Put("/:booking_id", h.HandleUpdateBooking)
}

// callerID returns the authenticated user's ID from the request context.
func callerID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// HandleGetBookings lists the caller's bookings.
func (h *BookingHandler) HandleGetBookings(c *fiber.Ctx) error {
	bookings, err := h.service.GetBookingsForUser(callerID(c))
	if err != nil {
		log.Printf("Error getting bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Bookings retrieved successfully.",
		"data":    fiber.Map{"bookings": bookings},
	})
}

// HandleGetBookingByID retrieves one of the caller's bookings. Another
// user's booking ID behaves exactly like a missing one.
func (h *BookingHandler) HandleGetBookingByID(c *fiber.Ctx) error {
	bookingID, err := parseIDParam(c, "booking_id")
	if err != nil {
		return validationFailed(c, map[string]string{"booking_id": err.Error()})
	}

	booking, err := h.service.GetBookingForUser(bookingID, callerID(c))
	if err != nil {
		return h.respondBookingError(c, bookingID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Booking retrieved successfully.",
		"data":    fiber.Map{"booking": booking},
	})
}

// CreateBookingRequest is the request body for booking creation. The
// owning user is never taken from the body.
type CreateBookingRequest struct {
	RoomID       uint    `json:"room_id" validate:"required"`
	CheckInDate  string  `json:"check_in_date" validate:"required"`
	CheckOutDate string  `json:"check_out_date" validate:"required"`
	TotalGuests  int     `json:"total_guests" validate:"required"`
	TotalPrice   float64 `json:"total_price" validate:"required"`
	IsCancelled  *bool   `json:"is_cancelled" validate:"required"`
}

// HandleCreateBooking inserts a booking owned by the caller.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	fields := validation.Struct(req)

	var checkIn, checkOut time.Time
	if fields == nil {
		fields = make(map[string]string)
		var err error
		if checkIn, err = parseDate(req.CheckInDate); err != nil {
			fields["check_in_date"] = err.Error()
		}
		if checkOut, err = parseDate(req.CheckOutDate); err != nil {
			fields["check_out_date"] = err.Error()
		}
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	booking := &models.Booking{
		UserID:       callerID(c),
		RoomID:       req.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalGuests:  req.TotalGuests,
		TotalPrice:   req.TotalPrice,
		IsCancelled:  *req.IsCancelled,
	}

	created, err := h.service.CreateBooking(booking)
	if err != nil {
		return h.respondBookingError(c, booking.BookingID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Booking created successfully.",
		"data":    fiber.Map{"booking": created},
	})
}

// UpdateBookingRequest is the partial request body for booking updates.
type UpdateBookingRequest struct {
	RoomID       *uint    `json:"room_id"`
	CheckInDate  *string  `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date"`
	TotalGuests  *int     `json:"total_guests"`
	TotalPrice   *float64 `json:"total_price"`
	IsCancelled  *bool    `json:"is_cancelled"`
}

// Fields returns the column/value pairs present in the request, with
// dates parsed. Unparseable dates are reported in errs.
func (r UpdateBookingRequest) Fields() (map[string]interface{}, map[string]string) {
	fields := make(map[string]interface{})
	errs := make(map[string]string)

	if r.RoomID != nil {
		fields["room_id"] = *r.RoomID
	}
	if r.CheckInDate != nil {
		if t, err := parseDate(*r.CheckInDate); err != nil {
			errs["check_in_date"] = err.Error()
		} else {
			fields["check_in_date"] = t
		}
	}
	if r.CheckOutDate != nil {
		if t, err := parseDate(*r.CheckOutDate); err != nil {
			errs["check_out_date"] = err.Error()
		} else {
			fields["check_out_date"] = t
		}
	}
	if r.TotalGuests != nil {
		fields["total_guests"] = *r.TotalGuests
	}
	if r.TotalPrice != nil {
		fields["total_price"] = *r.TotalPrice
	}
	if r.IsCancelled != nil {
		fields["is_cancelled"] = *r.IsCancelled
	}
	return fields, errs
}

// HandleUpdateBooking applies a partial, owner-scoped update. A zero
// affected-row count is reported distinctly as a missing booking.
func (h *BookingHandler) HandleUpdateBooking(c *fiber.Ctx) error {
	bookingID, err := parseIDParam(c, "booking_id")
	if err != nil {
		return validationFailed(c, map[string]string{"booking_id": err.Error()})
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
		})
	}

	fields, errs := req.Fields()
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}
	if len(fields) == 0 {
		return validationFailed(c, map[string]string{"room_id": "body is required"})
	}

	booking, err := h.service.UpdateBooking(bookingID, callerID(c), fields)
	if err != nil {
		return h.respondBookingError(c, bookingID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Booking updated successfully.",
		"data":    fiber.Map{"booking": booking},
	})
}

// respondBookingError maps store errors for booking operations.
func (h *BookingHandler) respondBookingError(c *fiber.Ctx, bookingID uint, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No booking found with %d", bookingID),
			"data":    nil,
		})
	}
	log.Printf("Booking store error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": err.Error(),
		"data":    nil,
	})
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("must be a valid date")
	}
	return t, nil
}
