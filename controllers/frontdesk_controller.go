// controllers/frontdesk_controller.go
package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CheckInPayload struct {
	RoomID       *uint `json:"roomId,omitempty"`
	ConfirmEarly bool  `json:"confirmEarly"`
}

type CheckOutPayload struct {
	ExtraCharge   float64 `json:"extraCharge"`
	Notes         string  `json:"notes"`
	PaymentMethod string  `json:"paymentMethod"`
	ConfirmEarly  bool    `json:"confirmEarly"`
	Complete      bool    `json:"complete"`
}

// ---------------------------
// Controller
// ---------------------------

// FrontDeskController exposes the check-in / check-out / cancel transitions.
type FrontDeskController struct {
	Lifecycle *services.BookingLifecycleService
}

func NewFrontDeskController(svc *services.BookingLifecycleService) *FrontDeskController {
	return &FrontDeskController{Lifecycle: svc}
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "booking id must be a positive number")
		return 0, false
	}
	return uint(id), true
}

// respondEngineError maps the engine's typed errors onto HTTP statuses.
// The message text is what the front desk presents verbatim.
func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking_not_found", "booking not found")
	case errors.Is(err, services.ErrServiceRequestNotFound):
		utils.JSONError(c, http.StatusNotFound, "service_request_not_found", "service request not found")
	case errors.Is(err, services.ErrSettlementNotFound):
		utils.JSONError(c, http.StatusNotFound, "settlement_not_found", "no settlement recorded for this booking")
	case errors.Is(err, services.ErrAlreadyProcessed):
		utils.JSONError(c, http.StatusConflict, "already_processed", "this transition has already been processed")
	case errors.Is(err, services.ErrInvalidState):
		utils.JSONError(c, http.StatusConflict, "invalid_state", "the booking's current status does not allow this operation")
	case errors.Is(err, services.ErrPaymentRequired):
		utils.JSONError(c, http.StatusPaymentRequired, "payment_required", "check-in requires the booking to be paid")
	case errors.Is(err, services.ErrMethodRequired):
		utils.JSONError(c, http.StatusBadRequest, "method_required", "an outstanding balance requires a settlement method (cash or card)")
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "storage is temporarily unavailable, please retry")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

func respondStayWarning(c *gin.Context, w *services.StayWarning) {
	message := "guest is arriving before the recorded check-in date; confirm to proceed"
	if w.Kind == services.WarningEarlyDeparture {
		message = "guest is leaving before the recorded check-out date; confirm to proceed"
	}
	utils.JSONWarning(c, http.StatusConflict, string(w.Kind), message, gin.H{"daysEarly": w.DaysEarly})
}

// CheckIn handles POST /api/bookings/:id/checkin
func (fc *FrontDeskController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload CheckInPayload
	// an absent body is fine; a present one (including chunked,
	// ContentLength -1) must parse
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	booking, warning, err := fc.Lifecycle.CheckIn(c.Request.Context(), id, services.CheckInOptions{
		RoomID:       payload.RoomID,
		ConfirmEarly: payload.ConfirmEarly,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if warning != nil {
		respondStayWarning(c, warning)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CheckOut handles POST /api/bookings/:id/checkout
func (fc *FrontDeskController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload CheckOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	booking, settlement, warning, err := fc.Lifecycle.CheckOut(c.Request.Context(), id, services.CheckOutOptions{
		ExtraCharge:   payload.ExtraCharge,
		Notes:         payload.Notes,
		PaymentMethod: payload.PaymentMethod,
		ConfirmEarly:  payload.ConfirmEarly,
		Complete:      payload.Complete,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if warning != nil {
		respondStayWarning(c, warning)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking":    booking,
		"settlement": settlement,
	})
}

// Cancel handles POST /api/bookings/:id/cancel
func (fc *FrontDeskController) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := fc.Lifecycle.Cancel(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// Folio handles GET /api/bookings/:id/folio — the running bill preview.
func (fc *FrontDeskController) Folio(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	preview, err := fc.Lifecycle.PreviewFolio(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, preview)
}

// Settlement handles GET /api/bookings/:id/settlement
func (fc *FrontDeskController) Settlement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rec, err := fc.Lifecycle.GetSettlement(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rec)
}
