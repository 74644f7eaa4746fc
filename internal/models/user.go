package models

import "time"

// User represents a registered guest account.
type User struct {
	UserID        uint      `json:"user_id" gorm:"primaryKey;column:user_id"`
	Email         string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password      string    `json:"-" gorm:"type:varchar(255)"` // bcrypt digest, never serialized
	Name          string    `json:"name" gorm:"type:varchar(100)"`
	ContactNumber string    `json:"contact_number" gorm:"type:varchar(10)"`
	Address       string    `json:"address" gorm:"type:varchar(200)"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
