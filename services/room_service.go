package services

import (
	"strings"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

// RoomService backs the room picker shown during check-in.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns rooms, optionally narrowed to a status ("available",
// "occupied", "maintenance").
func (s *RoomService) List(status string) ([]models.Room, error) {
	q := s.DB.Preload("RoomType").Order("room_number ASC")
	if status = strings.TrimSpace(strings.ToLower(status)); status != "" {
		q = q.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").First(&room, id).Error
	return room, err
}
