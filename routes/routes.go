package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the API routes.
func SetupRouter(
	bc *controllers.BookingController,
	fc *controllers.FrontDeskController,
	sc *controllers.ServiceRequestController,
	rc *controllers.RoomController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingDetails)

			// front-desk transitions
			bookings.POST("/:id/checkin", fc.CheckIn)
			bookings.POST("/:id/checkout", fc.CheckOut)
			bookings.POST("/:id/cancel", fc.Cancel)

			// billing views
			bookings.GET("/:id/folio", fc.Folio)
			bookings.GET("/:id/settlement", fc.Settlement)

			// in-stay services
			bookings.GET("/:id/service-requests", sc.GetByBooking)
			bookings.POST("/:id/service-requests", sc.Create)
		}

		serviceRequests := api.Group("/service-requests")
		{
			serviceRequests.PATCH("/:id/status", sc.UpdateStatus)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoomByID)
		}
	}

	return r
}
