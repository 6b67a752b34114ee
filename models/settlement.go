package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettlementMethod is how an outstanding balance was collected at the desk.
type SettlementMethod string

const (
	SettlementCash SettlementMethod = "cash"
	SettlementCard SettlementMethod = "card"
)

func (m SettlementMethod) IsValid() bool {
	return m == SettlementCash || m == SettlementCard
}

// SettlementRecord captures the final reconciliation produced at check-out.
// It is written once and never updated; the unique index on booking_id
// enforces one settlement per completed check-out.
type SettlementRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`

	TotalOwed   float64 `gorm:"column:total_owed" json:"totalOwed"`
	AlreadyPaid float64 `gorm:"column:already_paid" json:"alreadyPaid"`
	Outstanding float64 `gorm:"column:outstanding" json:"outstanding"`

	// Empty when nothing was outstanding.
	Method SettlementMethod `gorm:"column:method;size:16" json:"method,omitempty"`
	Notes  string           `gorm:"column:notes;type:text" json:"notes,omitempty"`

	// Per-charge breakdown (room cost, completed service requests,
	// extra charge) kept for audit display.
	LineItems datatypes.JSON `gorm:"column:line_items" json:"lineItems,omitempty"`
}

// SettlementLineItem is one row of the LineItems breakdown.
type SettlementLineItem struct {
	Kind        string  `json:"kind"` // room_cost | service_request | extra_charge
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
}
