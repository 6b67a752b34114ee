package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-frontdesk/models"

	"github.com/stretchr/testify/assert"
)

// memBookingStore is a mutex-guarded in-memory BookingStore whose
// conditional writes behave like the SQL implementation: the transition
// only lands when the stored status still matches.
type memBookingStore struct {
	mu          sync.Mutex
	bookings    map[uint]*models.Booking
	settlements map[uint]*models.SettlementRecord
}

func newMemBookingStore(seed ...*models.Booking) *memBookingStore {
	s := &memBookingStore{
		bookings:    make(map[uint]*models.Booking),
		settlements: make(map[uint]*models.SettlementRecord),
	}
	for _, b := range seed {
		copied := *b
		s.bookings[b.ID] = &copied
	}
	return s
}

func (s *memBookingStore) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *memBookingStore) ListBookings(_ context.Context, _ BookingFilter) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (s *memBookingStore) TransitionBooking(_ context.Context, id uint, from, to models.BookingStatus, _ map[string]interface{}) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.Status != from {
		return nil, ErrConflict
	}
	b.Status = to
	copied := *b
	return &copied, nil
}

func (s *memBookingStore) CompleteCheckOut(ctx context.Context, id uint, from, to models.BookingStatus, updates map[string]interface{}, rec *models.SettlementRecord) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.Status != from {
		return nil, ErrConflict
	}
	if _, exists := s.settlements[id]; exists {
		return nil, ErrConflict
	}
	b.Status = to
	s.settlements[id] = rec
	copied := *b
	return &copied, nil
}

func (s *memBookingStore) GetSettlement(_ context.Context, bookingID uint) (*models.SettlementRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.settlements[bookingID]
	if !ok {
		return nil, ErrSettlementNotFound
	}
	return rec, nil
}

type memServiceRequestStore struct{}

func (memServiceRequestStore) GetServiceRequest(_ context.Context, _ uint) (*models.ServiceRequest, error) {
	return nil, ErrServiceRequestNotFound
}

func (memServiceRequestStore) ListByBookingID(_ context.Context, _ uint) ([]models.ServiceRequest, error) {
	return nil, nil
}

func (memServiceRequestStore) CreateServiceRequest(_ context.Context, _ *models.ServiceRequest) error {
	return nil
}

func (memServiceRequestStore) TransitionServiceRequest(_ context.Context, _ uint, _, _ models.ServiceRequestStatus) (*models.ServiceRequest, error) {
	return nil, ErrConflict
}

func TestConcurrentCheckInExactlyOneWins(t *testing.T) {
	today := dateAt(2026, 3, 10)
	checkIn := today
	checkOut := today.AddDate(0, 0, 2)

	store := newMemBookingStore(&models.Booking{
		ID:            1,
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
		CheckInDate:   &checkIn,
		CheckOutDate:  &checkOut,
		TotalCost:     2400,
	})
	svc := NewBookingLifecycleService(store, memServiceRequestStore{})
	svc.now = func() time.Time { return today }

	const attempts = 8
	errs := make([]error, attempts)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(slot int) {
			defer done.Done()
			start.Wait()
			_, _, err := svc.CheckIn(context.Background(), 1, CheckInOptions{})
			errs[slot] = err
		}(i)
	}
	start.Done()
	done.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyProcessed)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent check-in must win")

	final, err := store.GetBooking(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCheckedIn, final.Status)
}

func TestConcurrentCheckOutExactlyOneSettlement(t *testing.T) {
	today := dateAt(2026, 3, 12)
	checkIn := today.AddDate(0, 0, -2)
	checkOut := today

	store := newMemBookingStore(&models.Booking{
		ID:            1,
		Status:        models.BookingCheckedIn,
		PaymentStatus: models.PaymentPaid,
		CheckInDate:   &checkIn,
		CheckOutDate:  &checkOut,
		TotalCost:     2400,
	})
	svc := NewBookingLifecycleService(store, memServiceRequestStore{})
	svc.now = func() time.Time { return today }

	const attempts = 4
	errs := make([]error, attempts)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(slot int) {
			defer done.Done()
			start.Wait()
			_, _, _, err := svc.CheckOut(context.Background(), 1, CheckOutOptions{})
			errs[slot] = err
		}(i)
	}
	start.Done()
	done.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyProcessed)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent check-out must win")

	// exactly one settlement record exists
	rec, err := store.GetSettlement(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2400.0, rec.TotalOwed)
	assert.Equal(t, 0.0, rec.Outstanding)
}
