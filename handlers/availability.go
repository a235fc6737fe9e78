package handlers

import (
	"net/http"

	"evently/models"
	"evently/services/schedule"
	"evently/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the staff-availability and schedule endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

type upsertAvailabilityRequest struct {
	Staff     string              `json:"staff" binding:"required"`
	Date      string              `json:"date" binding:"required"`
	TimeSlots []models.TimeWindow `json:"timeSlots"`
	Status    string              `json:"status"`
	Notes     string              `json:"notes"`
}

// ListAvailabilityHandler handles GET /staff-availability.
func (h *ScheduleHandler) ListAvailabilityHandler(c *gin.Context) {
	filter := schedule.ListFilter{
		StaffID:   c.Query("staffId"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	records, err := h.Service.ListAvailability(c.Request.Context(), filter)
	if err != nil {
		respondScheduleError(c, err, "Failed to list availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

// UpsertAvailabilityHandler handles POST /staff-availability. A submission
// for an existing (staff, date) pair replaces the stored record.
func (h *ScheduleHandler) UpsertAvailabilityHandler(c *gin.Context) {
	var req upsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	record, err := h.Service.UpsertAvailability(c.Request.Context(), schedule.UpsertInput{
		StaffID:     req.Staff,
		Date:        req.Date,
		Status:      models.AvailabilityStatus(req.Status),
		TimeWindows: req.TimeSlots,
		Notes:       req.Notes,
	})
	if err != nil {
		respondScheduleError(c, err, "Failed to save availability")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, record)
}

// DeleteAvailabilityHandler handles DELETE /staff-availability/:id. Staff may
// delete only their own records; admins may delete any.
func (h *ScheduleHandler) DeleteAvailabilityHandler(c *gin.Context) {
	recordID := c.Param("id")
	if recordID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing availability record ID in path")
		return
	}

	requester := requesterFromContext(c)
	if err := h.Service.DeleteAvailability(c.Request.Context(), recordID, requester); err != nil {
		respondScheduleError(c, err, "Failed to delete availability")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": recordID})
}

// requesterFromContext reads the identity the auth middleware stored.
func requesterFromContext(c *gin.Context) schedule.Requester {
	staffID, _ := c.Get("staffID")
	role, _ := c.Get("role")

	requester := schedule.Requester{}
	if s, ok := staffID.(string); ok {
		requester.StaffID = s
	}
	if r, ok := role.(string); ok {
		requester.Role = r
	}
	return requester
}

// respondScheduleError maps schedule service errors to HTTP statuses.
func respondScheduleError(c *gin.Context, err error, fallback string) {
	switch e := err.(type) {
	case *schedule.ValidationError:
		utils.JSONError(c, http.StatusBadRequest, e.Error())
	case *schedule.AuthorizationError:
		utils.JSONError(c, http.StatusForbidden, e.Error())
	case *schedule.NotFoundError:
		utils.JSONError(c, http.StatusNotFound, e.Error())
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}
