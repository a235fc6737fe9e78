package handlers

import (
	"net/http"
	"time"

	"evently/models"
	booking "evently/services/booking"
	"evently/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking and service-catalog endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type createBookingRequest struct {
	Staff         string    `json:"staff"`
	Customer      string    `json:"customer" binding:"required"`
	CustomerName  string    `json:"customerName"`
	Service       string    `json:"service"`
	EventDate     time.Time `json:"eventDate" binding:"required"`
	EventLocation string    `json:"eventLocation"`
	Status        string    `json:"status"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListBookingsHandler handles GET /bookings?date&staffId.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date")
		return
	}

	bookings, err := h.Service.ListOnDate(c.Request.Context(), date, c.Query("staffId"))
	if err != nil {
		respondBookingError(c, err, "Failed to list bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), booking.CreateInput{
		StaffID:       req.Staff,
		CustomerID:    req.Customer,
		CustomerName:  req.CustomerName,
		ServiceID:     req.Service,
		EventDate:     req.EventDate,
		EventLocation: req.EventLocation,
		Status:        models.BookingStatus(req.Status),
	})
	if err != nil {
		respondBookingError(c, err, "Failed to create booking")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateBookingStatusHandler handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	bookingID := c.Param("id")
	if bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing booking ID in path")
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), bookingID, models.BookingStatus(req.Status))
	if err != nil {
		respondBookingError(c, err, "Failed to update booking status")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// ListServicesHandler handles GET /services.
func (h *BookingHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context())
	if err != nil {
		respondBookingError(c, err, "Failed to list services")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services)
}

// CreateServiceHandler handles POST /services (admin only, enforced in routes).
func (h *BookingHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.EventService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	created, err := h.Service.CreateService(c.Request.Context(), svc)
	if err != nil {
		respondBookingError(c, err, "Failed to create service")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// respondBookingError maps booking service errors to HTTP statuses.
func respondBookingError(c *gin.Context, err error, fallback string) {
	switch e := err.(type) {
	case *booking.ValidationError:
		utils.JSONError(c, http.StatusBadRequest, e.Error())
	case *booking.NotFoundError:
		utils.JSONError(c, http.StatusNotFound, e.Error())
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}
