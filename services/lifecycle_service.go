// services/lifecycle_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-frontdesk/models"

	"gorm.io/datatypes"
)

// BookingLifecycleService orchestrates front-desk transitions: it runs the
// eligibility rules, computes settlement on check-out, and commits the new
// state through the store's conditional writes. Every rejected transition
// returns before any write.
type BookingLifecycleService struct {
	bookings BookingStore
	requests ServiceRequestStore

	// injectable clock for date-sensitive eligibility tests
	now func() time.Time
}

func NewBookingLifecycleService(bookings BookingStore, requests ServiceRequestStore) *BookingLifecycleService {
	return &BookingLifecycleService{
		bookings: bookings,
		requests: requests,
		now:      time.Now,
	}
}

// CheckInOptions are the operator's inputs for a check-in attempt.
type CheckInOptions struct {
	RoomID       *uint
	ConfirmEarly bool
}

// CheckIn moves a confirmed, paid booking to checked_in. When the guest
// arrives before the recorded date the first call returns the advisory
// warning without committing; the desk resubmits with ConfirmEarly after
// the operator confirms.
func (s *BookingLifecycleService) CheckIn(ctx context.Context, id uint, opts CheckInOptions) (*models.Booking, *StayWarning, error) {
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	warning, err := CheckInEligible(booking, s.now())
	if err != nil {
		return nil, nil, err
	}
	if warning != nil && !opts.ConfirmEarly {
		return nil, warning, nil
	}

	now := s.now()
	updates := map[string]interface{}{
		"checked_in_at": now,
	}
	if opts.RoomID != nil {
		updates["room_id"] = *opts.RoomID
	}

	updated, err := s.bookings.TransitionBooking(ctx, id, models.BookingConfirmed, models.BookingCheckedIn, updates)
	if err != nil {
		return nil, nil, translateStoreErr(err)
	}
	return updated, nil, nil
}

// CheckOutOptions are the operator's inputs for a check-out attempt.
type CheckOutOptions struct {
	ExtraCharge   float64
	Notes         string
	PaymentMethod string
	ConfirmEarly  bool

	// Complete closes the booking as completed instead of checked_out;
	// the choice is the caller's policy, both are legal from checked_in.
	Complete bool
}

// CheckOut settles the bill and moves a checked-in booking to checked_out
// (or completed). The settlement record and the status change are committed
// in one atomic store call; a missing payment method for an outstanding
// balance fails before anything is written.
func (s *BookingLifecycleService) CheckOut(ctx context.Context, id uint, opts CheckOutOptions) (*models.Booking, *models.SettlementRecord, *StayWarning, error) {
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	warning, err := CheckOutEligible(booking, s.now())
	if err != nil {
		return nil, nil, nil, err
	}
	if warning != nil && !opts.ConfirmEarly {
		return nil, nil, warning, nil
	}

	allRequests, err := s.requests.ListByBookingID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	billable := billableRequests(allRequests)

	totalOwed, err := ComputeTotal(booking, billable, opts.ExtraCharge)
	if err != nil {
		return nil, nil, nil, err
	}
	alreadyPaid := AmountAlreadyPaid(booking)
	outstanding, requiresMethod := Reconcile(totalOwed, alreadyPaid)

	var method models.SettlementMethod
	if requiresMethod {
		raw := strings.TrimSpace(strings.ToLower(opts.PaymentMethod))
		if raw == "" {
			return nil, nil, nil, ErrMethodRequired
		}
		method = models.SettlementMethod(raw)
		if !method.IsValid() {
			return nil, nil, nil, fmt.Errorf("%w: unknown settlement method %q", ErrInvalidInput, opts.PaymentMethod)
		}
	}

	record := &models.SettlementRecord{
		BookingID:   id,
		TotalOwed:   totalOwed,
		AlreadyPaid: alreadyPaid,
		Outstanding: outstanding,
		Method:      method,
		Notes:       strings.TrimSpace(opts.Notes),
		LineItems:   settlementLineItems(booking, billable, opts.ExtraCharge),
	}

	target := models.BookingCheckedOut
	if opts.Complete {
		target = models.BookingCompleted
	}
	updates := map[string]interface{}{
		"checked_out_at": s.now(),
	}

	updated, err := s.bookings.CompleteCheckOut(ctx, id, models.BookingCheckedIn, target, updates, record)
	if err != nil {
		return nil, nil, nil, translateStoreErr(err)
	}
	return updated, record, nil, nil
}

// Cancel marks a booking cancelled. Cancellation is a terminal status, not
// a delete, and is only reachable from pending, confirmed or checked_in.
func (s *BookingLifecycleService) Cancel(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(models.BookingCancelled) {
		return nil, ErrInvalidState
	}

	updated, err := s.bookings.TransitionBooking(ctx, id, booking.Status, models.BookingCancelled, nil)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return updated, nil
}

// UpdateServiceRequestStatus advances a service request. Terminal requests
// (completed/cancelled) cannot be re-opened, and a request cannot be moved
// back to pending.
func (s *BookingLifecycleService) UpdateServiceRequestStatus(ctx context.Context, id uint, rawStatus string) (*models.ServiceRequest, error) {
	target, err := models.ParseServiceRequestStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if target == models.ServiceRequestPending {
		return nil, fmt.Errorf("%w: cannot move a request back to pending", ErrInvalidInput)
	}

	request, err := s.requests.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status.IsTerminal() {
		return nil, ErrAlreadyProcessed
	}

	updated, err := s.requests.TransitionServiceRequest(ctx, id, request.Status, target)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return updated, nil
}

// CreateServiceRequest records an ad hoc priced service ordered during a
// stay. The booking must currently be checked in.
func (s *BookingLifecycleService) CreateServiceRequest(ctx context.Context, bookingID uint, serviceType models.ServiceType, description string, price float64) (*models.ServiceRequest, error) {
	if !serviceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, serviceType)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingCheckedIn {
		return nil, ErrInvalidState
	}

	request := &models.ServiceRequest{
		BookingID:   bookingID,
		ServiceType: serviceType,
		Description: strings.TrimSpace(description),
		Price:       price,
		Status:      models.ServiceRequestPending,
	}
	if err := s.requests.CreateServiceRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListBookings returns bookings for the dashboard filters.
func (s *BookingLifecycleService) ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, error) {
	return s.bookings.ListBookings(ctx, f)
}

// GetBooking loads a single booking for detail screens.
func (s *BookingLifecycleService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.bookings.GetBooking(ctx, id)
}

// GetSettlement returns the immutable settlement record written at check-out.
func (s *BookingLifecycleService) GetSettlement(ctx context.Context, bookingID uint) (*models.SettlementRecord, error) {
	return s.bookings.GetSettlement(ctx, bookingID)
}

// ServiceRequestsForBooking lists the service requests attached to a booking.
func (s *BookingLifecycleService) ServiceRequestsForBooking(ctx context.Context, bookingID uint) ([]models.ServiceRequest, error) {
	return s.requests.ListByBookingID(ctx, bookingID)
}

// FolioPreview is the running bill shown at the desk before check-out.
type FolioPreview struct {
	Booking                 *models.Booking             `json:"booking"`
	TotalOwed               float64                     `json:"totalOwed"`
	AlreadyPaid             float64                     `json:"alreadyPaid"`
	Outstanding             float64                     `json:"outstanding"`
	RequiresMethodSelection bool                        `json:"requiresMethodSelection"`
	Items                   []models.SettlementLineItem `json:"items"`
}

// PreviewFolio computes the current charge summary without mutating
// anything; the same aggregation check-out will run.
func (s *BookingLifecycleService) PreviewFolio(ctx context.Context, bookingID uint) (*FolioPreview, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	allRequests, err := s.requests.ListByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	billable := billableRequests(allRequests)

	totalOwed, err := ComputeTotal(booking, billable, 0)
	if err != nil {
		return nil, err
	}
	alreadyPaid := AmountAlreadyPaid(booking)
	outstanding, requiresMethod := Reconcile(totalOwed, alreadyPaid)

	return &FolioPreview{
		Booking:                 booking,
		TotalOwed:               totalOwed,
		AlreadyPaid:             alreadyPaid,
		Outstanding:             outstanding,
		RequiresMethodSelection: requiresMethod,
		Items:                   lineItems(booking, billable, 0),
	}, nil
}

// billableRequests keeps only completed requests: pending and in-progress
// work is not billed, cancelled contributes zero.
func billableRequests(requests []models.ServiceRequest) []models.ServiceRequest {
	out := make([]models.ServiceRequest, 0, len(requests))
	for _, sr := range requests {
		if sr.Status == models.ServiceRequestCompleted {
			out = append(out, sr)
		}
	}
	return out
}

func lineItems(b *models.Booking, billable []models.ServiceRequest, extraCharge float64) []models.SettlementLineItem {
	items := []models.SettlementLineItem{
		{Kind: "room_cost", Description: "original booking cost", Amount: b.TotalCost},
	}
	for _, sr := range billable {
		desc := sr.Description
		if desc == "" {
			desc = string(sr.ServiceType)
		}
		items = append(items, models.SettlementLineItem{
			Kind:        "service_request",
			Description: desc,
			Amount:      sr.Price,
		})
	}
	if extraCharge > 0 {
		items = append(items, models.SettlementLineItem{
			Kind:        "extra_charge",
			Description: "front-desk extra charge",
			Amount:      extraCharge,
		})
	}
	return items
}

func settlementLineItems(b *models.Booking, billable []models.ServiceRequest, extraCharge float64) datatypes.JSON {
	raw, err := json.Marshal(lineItems(b, billable, extraCharge))
	if err != nil {
		// line items are audit detail, never worth failing the checkout
		return nil
	}
	return datatypes.JSON(raw)
}

// translateStoreErr applies the policy from the store boundary: a failed
// conditional write means the transition already happened elsewhere.
func translateStoreErr(err error) error {
	if errors.Is(err, ErrConflict) {
		return ErrAlreadyProcessed
	}
	return err
}
