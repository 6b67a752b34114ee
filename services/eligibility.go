package services

import (
	"time"

	"hotel-frontdesk/models"
)

// WarningKind tags the advisory result of an eligibility check.
type WarningKind string

const (
	WarningEarlyArrival   WarningKind = "early_arrival"
	WarningEarlyDeparture WarningKind = "early_departure"
)

// StayWarning is a non-fatal advisory: the transition is permitted but the
// front desk must obtain explicit operator confirmation first. It is not an
// error.
type StayWarning struct {
	Kind      WarningKind `json:"kind"`
	DaysEarly int         `json:"daysEarly"`
}

// CheckInEligible classifies whether a booking snapshot may be checked in
// today. Rules are evaluated in order, first failure wins. A returned
// warning means eligible-with-confirmation. No side effects.
func CheckInEligible(b *models.Booking, today time.Time) (*StayWarning, error) {
	if b.Status == models.BookingCheckedIn {
		return nil, ErrAlreadyProcessed
	}
	if b.Status != models.BookingConfirmed {
		return nil, ErrInvalidState
	}
	if b.PaymentStatus != models.PaymentPaid {
		return nil, ErrPaymentRequired
	}
	if b.CheckInDate != nil {
		if days := daysUntil(today, *b.CheckInDate); days > 0 {
			return &StayWarning{Kind: WarningEarlyArrival, DaysEarly: days}, nil
		}
	}
	return nil, nil
}

// CheckOutEligible is the symmetric classification for check-out.
func CheckOutEligible(b *models.Booking, today time.Time) (*StayWarning, error) {
	if b.Status == models.BookingCheckedOut || b.Status == models.BookingCompleted {
		return nil, ErrAlreadyProcessed
	}
	if b.Status != models.BookingCheckedIn {
		return nil, ErrInvalidState
	}
	if b.CheckOutDate != nil {
		if days := daysUntil(today, *b.CheckOutDate); days > 0 {
			return &StayWarning{Kind: WarningEarlyDeparture, DaysEarly: days}, nil
		}
	}
	return nil, nil
}

// daysUntil returns the whole calendar days from today until date; zero or
// negative when date is today or already past. Eligibility comparisons are
// calendar-day, so both dates are re-anchored at UTC midnight before
// subtracting: a local-time subtraction would come up short on a DST
// transition day and drop a one-day-early warning.
func daysUntil(today, date time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}
