package models

import (
	"gorm.io/gorm"
)

// Room is the physical room a front-desk operator may assign at check-in.
type Room struct {
	gorm.Model

	// Nullable so rooms can exist before being categorised.
	RoomTypeID *uint `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`

	Status       string  `json:"status" gorm:"size:32"` // available | occupied | maintenance
	Price        float64 `json:"price"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID"`
}
