package repositories

import "hotelier/internal/models"

// BookingRepository defines the interface for booking data access.
// Every lookup and write is owner-scoped: rows are matched on both the
// booking ID and the requesting user's ID.
type BookingRepository interface {
	GetAllByUser(userID uint) ([]models.Booking, error)
	GetByIDForUser(bookingID, userID uint) (*models.Booking, error)
	Create(booking *models.Booking) error
	// UpdateFieldsForUser applies the given column/value pairs to the
	// caller's booking in a single conditional UPDATE and returns the
	// updated row.
	UpdateFieldsForUser(bookingID, userID uint, fields map[string]interface{}) (*models.Booking, error)
}
