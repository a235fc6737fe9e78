package schedule

import (
	"fmt"
	"regexp"
	"time"

	"evently/models"
)

const dateLayout = "2006-01-02"

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// NewTimeWindow constructs a validated time window. Both times must be 24h
// "HH:MM" strings and the start must precede the end. Comparison happens on
// parsed minutes since a single-digit hour like "9:00" is accepted.
func NewTimeWindow(startTime, endTime string, isAvailable bool) (models.TimeWindow, error) {
	start, err := parseClock("startTime", startTime)
	if err != nil {
		return models.TimeWindow{}, err
	}
	end, err := parseClock("endTime", endTime)
	if err != nil {
		return models.TimeWindow{}, err
	}
	if start >= end {
		return models.TimeWindow{}, NewValidationError("endTime", "end time must be after start time")
	}
	return models.TimeWindow{StartTime: startTime, EndTime: endTime, IsAvailable: isAvailable}, nil
}

// parseDate parses a calendar date in server-local time.
func parseDate(field, value string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, NewValidationError(field, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return day, nil
}

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(field, value string) (int, error) {
	if !clockPattern.MatchString(value) {
		return 0, NewValidationError(field, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	var h, m int
	fmt.Sscanf(value, "%d:%d", &h, &m)
	return h*60 + m, nil
}

// formatClock renders minutes from midnight as "HH:MM", wrapping past
// midnight the way a timestamp formatter would.
func formatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// minutesOfDay returns t's clock time as minutes from midnight, server-local.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
