package repository

import (
	"errors"
	"testing"
	"time"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"

	"github.com/stretchr/testify/assert"
)

func TestWithStatusLeavesCallerMapUntouched(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	updates := map[string]interface{}{"checked_in_at": now}

	out := withStatus(updates, models.BookingCheckedIn)

	assert.Equal(t, models.BookingCheckedIn, out["status"])
	assert.Equal(t, now, out["checked_in_at"])
	// the lifecycle's map must not grow a status key as a side effect
	assert.NotContains(t, updates, "status")
	assert.Len(t, updates, 1)
}

func TestWithStatusNilMap(t *testing.T) {
	out := withStatus(nil, models.BookingCancelled)
	assert.Equal(t, map[string]interface{}{"status": models.BookingCancelled}, out)
}

func TestWrapStoreErrKeepsSingleSentinel(t *testing.T) {
	wrapped := wrapStoreErr("load booking", errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
	assert.ErrorIs(t, wrapped, services.ErrStoreUnavailable)

	// re-wrapping on the way out of a transaction must not stack sentinels
	again := wrapStoreErr("complete checkout", wrapped)
	assert.Equal(t, wrapped, again)
}
