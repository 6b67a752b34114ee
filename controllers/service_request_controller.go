// controllers/service_request_controller.go
package controllers

import (
	"net/http"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type CreateServiceRequestPayload struct {
	ServiceType string  `json:"serviceType" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type UpdateServiceRequestStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// ServiceRequestController manages ad hoc priced services ordered during a
// stay; completed ones are billed at check-out.
type ServiceRequestController struct {
	Lifecycle *services.BookingLifecycleService
}

func NewServiceRequestController(svc *services.BookingLifecycleService) *ServiceRequestController {
	return &ServiceRequestController{Lifecycle: svc}
}

// GetByBooking handles GET /api/bookings/:id/service-requests
func (sc *ServiceRequestController) GetByBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	list, err := sc.Lifecycle.ServiceRequestsForBooking(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if list == nil {
		list = []models.ServiceRequest{}
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// Create handles POST /api/bookings/:id/service-requests
func (sc *ServiceRequestController) Create(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload CreateServiceRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	request, err := sc.Lifecycle.CreateServiceRequest(
		c.Request.Context(),
		id,
		models.ServiceType(payload.ServiceType),
		payload.Description,
		payload.Price,
	)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, request)
}

// UpdateStatus handles PATCH /api/service-requests/:id/status
func (sc *ServiceRequestController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload UpdateServiceRequestStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	request, err := sc.Lifecycle.UpdateServiceRequestStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, request)
}
