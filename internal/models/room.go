package models

import "time"

// Room represents a bookable hotel room.
type Room struct {
	RoomID        uint      `json:"room_id" gorm:"primaryKey;column:room_id"`
	RoomNumber    string    `json:"room_number" gorm:"uniqueIndex;type:varchar(20)"`
	RoomType      string    `json:"room_type" gorm:"type:varchar(50)"`
	Description   string    `json:"description" gorm:"type:varchar(200)"`
	Amenities     string    `json:"amenities" gorm:"type:varchar(200)"`
	PricePerNight float64   `json:"price_per_night"`
	IsAvailable   bool      `json:"is_available" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
