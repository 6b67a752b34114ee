// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"strings"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// BookingController serves the dashboard's read side: the filtered booking
// list and the booking detail screen.
type BookingController struct {
	Lifecycle *services.BookingLifecycleService
}

func NewBookingController(svc *services.BookingLifecycleService) *BookingController {
	return &BookingController{Lifecycle: svc}
}

// GetBookings handles GET /api/bookings?status=&q=
func (bc *BookingController) GetBookings(c *gin.Context) {
	var filter services.BookingFilter

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, err := models.ParseBookingStatus(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		filter.Status = &status
	}
	filter.Search = c.Query("q")

	list, err := bc.Lifecycle.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if list == nil {
		list = []models.Booking{}
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetBookingDetails handles GET /api/bookings/:id
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.Lifecycle.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
