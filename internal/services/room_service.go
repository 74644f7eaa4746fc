package services

import (
	"hotelier/internal/models"
	"hotelier/internal/repositories"
)

// RoomService handles business logic related to rooms.
type RoomService struct {
	repo repositories.RoomRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(repo repositories.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// GetAllRooms retrieves all rooms.
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	return s.repo.GetAll()
}

// GetRoomByID retrieves a single room by its ID.
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	return s.repo.GetByID(id)
}

// CreateRoom inserts a new room and returns the stored row.
func (s *RoomService) CreateRoom(room *models.Room) (*models.Room, error) {
	if err := s.repo.Create(room); err != nil {
		return nil, err
	}
	return s.repo.GetByID(room.RoomID)
}

// UpdateRoom applies a partial update and returns the updated row.
func (s *RoomService) UpdateRoom(id uint, fields map[string]interface{}) (*models.Room, error) {
	return s.repo.UpdateFields(id, fields)
}
