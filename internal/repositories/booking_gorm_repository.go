package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotelier/internal/models"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{db: db}
}

// GetAllByUser retrieves every booking owned by the given user.
func (r *GORMBookingRepository) GetAllByUser(userID uint) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := r.db.Find(&bookings, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}

// GetByIDForUser retrieves one booking matched on both booking_id and
// user_id. A booking owned by another user is indistinguishable from a
// missing one.
func (r *GORMBookingRepository) GetByIDForUser(bookingID, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "booking_id = ? AND user_id = ?", bookingID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with ID %d: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking %d for user %d: %w", bookingID, userID, err)
	}
	return &booking, nil
}

// Create inserts a new booking. The caller is responsible for forcing
// UserID to the authenticated identity.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateFieldsForUser updates only the provided columns on the caller's
// booking. Zero affected rows means no booking with that ID belongs to
// the user.
func (r *GORMBookingRepository) UpdateFieldsForUser(bookingID, userID uint, fields map[string]interface{}) (*models.Booking, error) {
	res := r.db.Model(&models.Booking{}).
		Where("booking_id = ? AND user_id = ?", bookingID, userID).
		Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", bookingID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("booking with ID %d: %w", bookingID, ErrNotFound)
	}
	return r.GetByIDForUser(bookingID, userID)
}
