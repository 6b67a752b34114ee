package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ServiceRequestStatus represents the state of an ad hoc service order.
type ServiceRequestStatus string

const (
	ServiceRequestPending    ServiceRequestStatus = "pending"
	ServiceRequestInProgress ServiceRequestStatus = "in_progress"
	ServiceRequestCompleted  ServiceRequestStatus = "completed"
	ServiceRequestCancelled  ServiceRequestStatus = "cancelled"
)

func (s ServiceRequestStatus) IsValid() bool {
	switch s {
	case ServiceRequestPending, ServiceRequestInProgress,
		ServiceRequestCompleted, ServiceRequestCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the request can no longer change state.
// A completed or cancelled request cannot be re-opened.
func (s ServiceRequestStatus) IsTerminal() bool {
	return s == ServiceRequestCompleted || s == ServiceRequestCancelled
}

func (s ServiceRequestStatus) String() string { return string(s) }

func ParseServiceRequestStatus(raw string) (ServiceRequestStatus, error) {
	s := ServiceRequestStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid service request status: %q", raw)
	}
	return s, nil
}

// ServiceType is the billing category of a service request.
type ServiceType string

const (
	ServiceRoomService ServiceType = "room_service"
	ServiceLaundry     ServiceType = "laundry"
	ServiceSpa         ServiceType = "spa"
	ServiceTransport   ServiceType = "transport"
	ServiceMaintenance ServiceType = "maintenance"
)

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceRoomService, ServiceLaundry, ServiceSpa,
		ServiceTransport, ServiceMaintenance:
		return true
	}
	return false
}

type ServiceRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint `gorm:"column:booking_id;index" json:"bookingId"`

	ServiceType ServiceType          `gorm:"column:service_type;size:32" json:"serviceType"`
	Description string               `gorm:"column:description;type:text" json:"description"`
	Price       float64              `gorm:"column:price" json:"price"`
	Status      ServiceRequestStatus `gorm:"column:status;size:32;index" json:"status"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
