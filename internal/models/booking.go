package models

import "time"

// Booking represents a reservation owned by a single user. Reads and
// writes are always scoped to (booking_id, user_id).
type Booking struct {
	BookingID    uint      `json:"booking_id" gorm:"primaryKey;column:booking_id"`
	UserID       uint      `json:"user_id" gorm:"index;column:user_id"`
	RoomID       uint      `json:"room_id" gorm:"index;column:room_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	TotalGuests  int       `json:"total_guests"`
	TotalPrice   float64   `json:"total_price"`
	IsCancelled  bool      `json:"is_cancelled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:UserID"`
	Room Room `json:"-" gorm:"foreignKey:RoomID;references:RoomID"`
}
