package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`

	// Guest identity is denormalized for front-desk display; the
	// authoritative guest record lives in the booking-creation system.
	FirstName string `gorm:"column:first_name;size:120" json:"firstName"`
	LastName  string `gorm:"column:last_name;size:120" json:"lastName"`
	Email     string `gorm:"column:email;size:255" json:"email"`

	// Stay window as calendar dates; time of day is not significant
	// to eligibility rules.
	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	Status        BookingStatus `gorm:"column:status;size:32;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:32" json:"paymentStatus"`

	// Quoted at booking creation. The lifecycle engine never mutates it;
	// extra charges and service requests vary the amount due instead.
	TotalCost float64 `gorm:"column:total_cost" json:"totalCost"`

	RoomID *uint `gorm:"column:room_id;index" json:"roomId,omitempty"`
	Room   Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`
}

// GuestName returns the display name for front-desk screens.
func (b *Booking) GuestName() string {
	if b.FirstName == "" {
		return b.LastName
	}
	if b.LastName == "" {
		return b.FirstName
	}
	return b.FirstName + " " + b.LastName
}
