package services

import (
	"context"

	"hotel-frontdesk/models"
)

// BookingFilter narrows ListBookings for the dashboard status tabs and the
// free-text search box (guest name, email, reference code).
type BookingFilter struct {
	Status *models.BookingStatus
	Search string
}

// BookingStore is the document-store boundary for bookings and their
// settlement records. Implementations must provide conditional writes: a
// transition only succeeds when the stored status still equals `from`, and
// a failed condition is reported as ErrConflict so concurrent duplicate
// submissions cannot both win. Infrastructure failures are wrapped in
// ErrStoreUnavailable.
type BookingStore interface {
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, error)

	// TransitionBooking performs the compare-and-swap status write,
	// applying extra column updates in the same statement.
	TransitionBooking(ctx context.Context, id uint, from, to models.BookingStatus, updates map[string]interface{}) (*models.Booking, error)

	// CompleteCheckOut commits the status transition and the settlement
	// record atomically; neither is written if the other fails.
	CompleteCheckOut(ctx context.Context, id uint, from, to models.BookingStatus, updates map[string]interface{}, rec *models.SettlementRecord) (*models.Booking, error)

	GetSettlement(ctx context.Context, bookingID uint) (*models.SettlementRecord, error)
}

// ServiceRequestStore is the document-store boundary for ad hoc service
// orders. Same conditional-write contract as BookingStore.
type ServiceRequestStore interface {
	GetServiceRequest(ctx context.Context, id uint) (*models.ServiceRequest, error)
	ListByBookingID(ctx context.Context, bookingID uint) ([]models.ServiceRequest, error)
	CreateServiceRequest(ctx context.Context, sr *models.ServiceRequest) error
	TransitionServiceRequest(ctx context.Context, id uint, from, to models.ServiceRequestStatus) (*models.ServiceRequest, error)
}
