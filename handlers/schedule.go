package handlers

import (
	"net/http"

	"evently/utils"

	"github.com/gin-gonic/gin"
)

type checkConflictsRequest struct {
	Date             string `json:"date" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	ExcludeBookingID string `json:"excludeBookingId"`
}

// CheckConflictsHandler handles POST /staff-availability/check-conflicts. It
// reports which same-day bookings overlap the proposed time span; it reserves
// nothing, so a booking created right after the check may still collide.
func (h *ScheduleHandler) CheckConflictsHandler(c *gin.Context) {
	var req checkConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	report, err := h.Service.CheckConflicts(c.Request.Context(), req.Date, req.StartTime, req.EndTime, req.ExcludeBookingID)
	if err != nil {
		respondScheduleError(c, err, "Failed to check conflicts")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

// DailyScheduleHandler handles GET /staff-availability/schedule/:date.
func (h *ScheduleHandler) DailyScheduleHandler(c *gin.Context) {
	view, err := h.Service.GetDailySchedule(c.Request.Context(), c.Param("date"), c.Query("staffId"))
	if err != nil {
		respondScheduleError(c, err, "Failed to build daily schedule")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// GridHandler handles GET /staff-availability/grid, the weekly/monthly
// calendar matrix.
func (h *ScheduleHandler) GridHandler(c *gin.Context) {
	cells, err := h.Service.BuildGrid(c.Request.Context(), c.Query("startDate"), c.Query("endDate"), c.Query("staffId"))
	if err != nil {
		respondScheduleError(c, err, "Failed to build calendar grid")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cells)
}
