// controllers/room_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoomController serves the room picker used when assigning a room at
// check-in.
type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /api/rooms?status=available
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.List(c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "storage is temporarily unavailable, please retry")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoomByID handles GET /api/rooms/:id
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := rc.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room_not_found", "room not found")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "storage is temporarily unavailable, please retry")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
