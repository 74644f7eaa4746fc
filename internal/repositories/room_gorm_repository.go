package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotelier/internal/models"
)

// GORMRoomRepository is a GORM implementation of RoomRepository.
type GORMRoomRepository struct {
	db *gorm.DB
}

// NewGORMRoomRepository creates a new instance of GORMRoomRepository.
func NewGORMRoomRepository(db *gorm.DB) *GORMRoomRepository {
	return &GORMRoomRepository{db: db}
}

// GetAll retrieves every room, unfiltered.
func (r *GORMRoomRepository) GetAll() ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := r.db.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to get all rooms: %w", err)
	}
	return rooms, nil
}

// GetByID retrieves a single room by its ID.
func (r *GORMRoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room by ID %d: %w", id, err)
	}
	return &room, nil
}

// Create inserts a new room. A duplicate room_number is reported as
// ErrDuplicate so handlers can distinguish it from generic failures.
func (r *GORMRoomRepository) Create(room *models.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("room with number %s: %w", room.RoomNumber, ErrDuplicate)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateFields updates only the provided columns. The existence check
// and the write are one statement, so there is no interleaving window
// between them; zero affected rows means the room does not exist.
func (r *GORMRoomRepository) UpdateFields(id uint, fields map[string]interface{}) (*models.Room, error) {
	res := r.db.Model(&models.Room{}).Where("room_id = ?", id).Updates(fields)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("room %d update: %w", id, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("room with ID %d: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}
