package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
)

func dateAt(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestCheckInEligible(t *testing.T) {
	today := dateAt(2026, 3, 10)

	tests := []struct {
		name      string
		booking   models.Booking
		wantErr   error
		daysEarly int
	}{
		{
			name: "confirmed and paid on the arrival date",
			booking: models.Booking{
				Status:        models.BookingConfirmed,
				PaymentStatus: models.PaymentPaid,
				CheckInDate:   datePtr(today),
			},
		},
		{
			name:    "already checked in",
			booking: models.Booking{Status: models.BookingCheckedIn, PaymentStatus: models.PaymentPaid},
			wantErr: ErrAlreadyProcessed,
		},
		{
			name:    "pending booking",
			booking: models.Booking{Status: models.BookingPending, PaymentStatus: models.PaymentPaid},
			wantErr: ErrInvalidState,
		},
		{
			name:    "cancelled booking",
			booking: models.Booking{Status: models.BookingCancelled, PaymentStatus: models.PaymentPaid},
			wantErr: ErrInvalidState,
		},
		{
			name:    "confirmed but unpaid",
			booking: models.Booking{Status: models.BookingConfirmed, PaymentStatus: models.PaymentUnpaid},
			wantErr: ErrPaymentRequired,
		},
		{
			// state is checked before payment: a pending unpaid booking
			// reports the state problem, not the payment one
			name:    "state rule wins over payment rule",
			booking: models.Booking{Status: models.BookingPending, PaymentStatus: models.PaymentUnpaid},
			wantErr: ErrInvalidState,
		},
		{
			name: "arriving two days early",
			booking: models.Booking{
				Status:        models.BookingConfirmed,
				PaymentStatus: models.PaymentPaid,
				CheckInDate:   datePtr(dateAt(2026, 3, 12)),
			},
			daysEarly: 2,
		},
		{
			name: "arriving after the recorded date",
			booking: models.Booking{
				Status:        models.BookingConfirmed,
				PaymentStatus: models.PaymentPaid,
				CheckInDate:   datePtr(dateAt(2026, 3, 8)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, err := CheckInEligible(&tt.booking, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, warning)
				return
			}
			assert.NoError(t, err)
			if tt.daysEarly > 0 {
				if assert.NotNil(t, warning) {
					assert.Equal(t, WarningEarlyArrival, warning.Kind)
					assert.Equal(t, tt.daysEarly, warning.DaysEarly)
				}
			} else {
				assert.Nil(t, warning)
			}
		})
	}
}

func TestCheckInEligibleIgnoresTimeOfDay(t *testing.T) {
	// late evening today vs midnight tomorrow is still one calendar day early
	today := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	booking := models.Booking{
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
		CheckInDate:   datePtr(dateAt(2026, 3, 11)),
	}

	warning, err := CheckInEligible(&booking, today)
	assert.NoError(t, err)
	if assert.NotNil(t, warning) {
		assert.Equal(t, 1, warning.DaysEarly)
	}
}

func TestCheckInEligibleAcrossDSTTransition(t *testing.T) {
	// US DST starts 2026-03-08: that local day is 23 hours long. Arriving
	// one calendar day early must still warn.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	today := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	booking := models.Booking{
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
		CheckInDate:   datePtr(time.Date(2026, 3, 9, 0, 0, 0, 0, loc)),
	}

	warning, err := CheckInEligible(&booking, today)
	assert.NoError(t, err)
	if assert.NotNil(t, warning) {
		assert.Equal(t, WarningEarlyArrival, warning.Kind)
		assert.Equal(t, 1, warning.DaysEarly)
	}
}

func TestCheckOutEligible(t *testing.T) {
	today := dateAt(2026, 3, 10)

	tests := []struct {
		name      string
		booking   models.Booking
		wantErr   error
		daysEarly int
	}{
		{
			name: "checked in, leaving on the recorded date",
			booking: models.Booking{
				Status:       models.BookingCheckedIn,
				CheckOutDate: datePtr(today),
			},
		},
		{
			name:    "already checked out",
			booking: models.Booking{Status: models.BookingCheckedOut},
			wantErr: ErrAlreadyProcessed,
		},
		{
			name:    "already completed",
			booking: models.Booking{Status: models.BookingCompleted},
			wantErr: ErrAlreadyProcessed,
		},
		{
			name:    "never checked in",
			booking: models.Booking{Status: models.BookingConfirmed},
			wantErr: ErrInvalidState,
		},
		{
			name: "leaving a day early",
			booking: models.Booking{
				Status:       models.BookingCheckedIn,
				CheckOutDate: datePtr(dateAt(2026, 3, 11)),
			},
			daysEarly: 1,
		},
		{
			name: "overstaying past the recorded date",
			booking: models.Booking{
				Status:       models.BookingCheckedIn,
				CheckOutDate: datePtr(dateAt(2026, 3, 9)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, err := CheckOutEligible(&tt.booking, today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, warning)
				return
			}
			assert.NoError(t, err)
			if tt.daysEarly > 0 {
				if assert.NotNil(t, warning) {
					assert.Equal(t, WarningEarlyDeparture, warning.Kind)
					assert.Equal(t, tt.daysEarly, warning.DaysEarly)
				}
			} else {
				assert.Nil(t, warning)
			}
		})
	}
}
