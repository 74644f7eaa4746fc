package services

import (
	"log"

	"github.com/google/uuid"

	"hotelier/internal/models"
	"hotelier/internal/repositories"
)

// EventPublisher publishes booking lifecycle events to the message
// queue. *rabbitmq.Client satisfies it; a nil publisher disables
// publishing.
type EventPublisher interface {
	PublishBookingEvent(event string, payload map[string]interface{}) error
}

// BookingService handles business logic related to bookings.
type BookingService struct {
	repo      repositories.BookingRepository
	publisher EventPublisher
}

// NewBookingService creates a new BookingService.
func NewBookingService(repo repositories.BookingRepository, publisher EventPublisher) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetBookingsForUser retrieves every booking owned by the user.
func (s *BookingService) GetBookingsForUser(userID uint) ([]models.Booking, error) {
	return s.repo.GetAllByUser(userID)
}

// GetBookingForUser retrieves one of the user's bookings.
func (s *BookingService) GetBookingForUser(bookingID, userID uint) (*models.Booking, error) {
	return s.repo.GetByIDForUser(bookingID, userID)
}

// CreateBooking inserts a new booking and returns the stored row.
// The booking's UserID must already be forced to the caller's identity.
func (s *BookingService) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByIDForUser(booking.BookingID, booking.UserID)
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", created)
	return created, nil
}

// UpdateBooking applies a partial, owner-scoped update and returns the
// updated row.
func (s *BookingService) UpdateBooking(bookingID, userID uint, fields map[string]interface{}) (*models.Booking, error) {
	updated, err := s.repo.UpdateFieldsForUser(bookingID, userID, fields)
	if err != nil {
		return nil, err
	}

	s.publish("booking.updated", updated)
	return updated, nil
}

// publish emits a booking event. Publishing is best effort: a failure
// is logged and never surfaces to the request that triggered it.
func (s *BookingService) publish(event string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"booking_id": booking.BookingID,
		"user_id":    booking.UserID,
		"room_id":    booking.RoomID,
		"cancelled":  booking.IsCancelled,
	}
	if err := s.publisher.PublishBookingEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for booking %d: %v", event, booking.BookingID, err)
	}
}
