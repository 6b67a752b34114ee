package services

import "errors"

// Engine error taxonomy. Controllers dispatch on these with errors.Is;
// repository implementations return ErrConflict / ErrStoreUnavailable and
// the lifecycle translates them for callers.
var (
	// ErrInvalidState: the booking's current status does not permit the
	// requested transition.
	ErrInvalidState = errors.New("invalid_state")

	// ErrAlreadyProcessed: the transition already happened, either before
	// this call or concurrently (a failed conditional write).
	ErrAlreadyProcessed = errors.New("already_processed")

	// ErrPaymentRequired: check-in attempted before online payment was
	// captured.
	ErrPaymentRequired = errors.New("payment_required")

	// ErrMethodRequired: an outstanding balance exists but no settlement
	// method (cash/card) was supplied.
	ErrMethodRequired = errors.New("method_required")

	// ErrInvalidInput: malformed numeric or enumerated input.
	ErrInvalidInput = errors.New("invalid_input")

	ErrBookingNotFound        = errors.New("booking_not_found")
	ErrServiceRequestNotFound = errors.New("service_request_not_found")
	ErrSettlementNotFound     = errors.New("settlement_not_found")

	// ErrConflict: a conditional status write matched no row because the
	// status changed since it was read. Store implementations return it;
	// the lifecycle surfaces it as ErrAlreadyProcessed.
	ErrConflict = errors.New("status_conflict")

	// ErrStoreUnavailable: infrastructure failure, safe for the caller to
	// retry the whole operation (eligibility is re-checked on retry).
	ErrStoreUnavailable = errors.New("store_unavailable")
)
