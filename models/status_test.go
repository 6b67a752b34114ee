package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	// checked_in is reachable only from confirmed
	for _, from := range []BookingStatus{BookingPending, BookingCheckedOut, BookingCompleted, BookingCancelled} {
		assert.False(t, from.CanTransitionTo(BookingCheckedIn), "checked_in must not be reachable from %s", from)
	}
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCheckedIn))

	// checked_out and completed only from checked_in (completed also closes checked_out)
	assert.True(t, BookingCheckedIn.CanTransitionTo(BookingCheckedOut))
	assert.True(t, BookingCheckedIn.CanTransitionTo(BookingCompleted))
	assert.True(t, BookingCheckedOut.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingCheckedOut))

	// cancellation is reachable from pending/confirmed/checked_in and nowhere else
	for _, from := range []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn} {
		assert.True(t, from.CanTransitionTo(BookingCancelled), "cancel must be legal from %s", from)
	}
	for _, from := range []BookingStatus{BookingCheckedOut, BookingCompleted, BookingCancelled} {
		assert.False(t, from.CanTransitionTo(BookingCancelled), "cancel must be illegal from %s", from)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []BookingStatus{BookingCompleted, BookingCancelled} {
		assert.True(t, terminal.IsTerminal())
		for _, target := range []BookingStatus{
			BookingPending, BookingConfirmed, BookingCheckedIn,
			BookingCheckedOut, BookingCompleted, BookingCancelled,
		} {
			assert.False(t, terminal.CanTransitionTo(target), "%s -> %s must be illegal", terminal, target)
		}
	}
	assert.False(t, BookingConfirmed.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("checked_in")
	assert.NoError(t, err)
	assert.Equal(t, BookingCheckedIn, status)

	_, err = ParseBookingStatus("Checked-In")
	assert.Error(t, err)
}

func TestServiceRequestStatus(t *testing.T) {
	assert.True(t, ServiceRequestCompleted.IsTerminal())
	assert.True(t, ServiceRequestCancelled.IsTerminal())
	assert.False(t, ServiceRequestPending.IsTerminal())
	assert.False(t, ServiceRequestInProgress.IsTerminal())

	_, err := ParseServiceRequestStatus("done")
	assert.Error(t, err)
}
