package handlers

import (
	"net/http"

	"evently/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Staff availability and schedule endpoints.
	ListAvailabilityHandler   gin.HandlerFunc
	UpsertAvailabilityHandler gin.HandlerFunc
	DeleteAvailabilityHandler gin.HandlerFunc
	CheckConflictsHandler     gin.HandlerFunc
	DailyScheduleHandler      gin.HandlerFunc
	GridHandler               gin.HandlerFunc

	// Booking endpoints.
	ListBookingsHandler        gin.HandlerFunc
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Service catalog endpoints.
	ListServicesHandler  gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
}

// HealthHandler reports the latest backing-store health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": "ok", "health": status})
}
