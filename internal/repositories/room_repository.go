package repositories

import "hotelier/internal/models"

// RoomRepository defines the interface for room data access.
type RoomRepository interface {
	GetAll() ([]models.Room, error)
	GetByID(id uint) (*models.Room, error)
	Create(room *models.Room) error
	// UpdateFields applies the given column/value pairs to one room in a
	// single conditional UPDATE and returns the updated row.
	UpdateFields(id uint, fields map[string]interface{}) (*models.Room, error)
}
