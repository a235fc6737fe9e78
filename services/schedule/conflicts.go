package schedule

import (
	"context"

	bookingRepo "evently/database/repository/booking"
	"evently/models"
	"evently/utils"

	"go.uber.org/zap"
)

// fallbackDurationMin is used when no default is configured at all.
const fallbackDurationMin = 60

// CheckConflicts scans the given date's active bookings and reports every one
// whose effective interval overlaps [startTime, endTime). Intervals are
// half-open, so touching endpoints do not conflict. Pure read, no side
// effects.
func (s *DefaultScheduleService) CheckConflicts(ctx context.Context, date, startTime, endTime, excludeBookingID string) (models.ConflictReport, error) {
	day, err := parseDate("date", date)
	if err != nil {
		return models.ConflictReport{}, err
	}
	start, err := parseClock("startTime", startTime)
	if err != nil {
		return models.ConflictReport{}, err
	}
	end, err := parseClock("endTime", endTime)
	if err != nil {
		return models.ConflictReport{}, err
	}
	if start >= end {
		return models.ConflictReport{}, NewValidationError("endTime", "end time must be after start time")
	}

	bookings, err := s.Bookings.FindActiveOnDate(ctx, day, bookingRepo.QueryOptions{
		ExcludeBookingID: excludeBookingID,
		ExcludedStatuses: conflictExcludedStatuses,
	})
	if err != nil {
		return models.ConflictReport{}, err
	}

	report := models.ConflictReport{Conflicts: []models.Conflict{}}
	durations := make(map[string]serviceInfo)
	for _, b := range bookings {
		info := s.resolveService(ctx, b, durations)
		bStart := minutesOfDay(b.EventDate)
		bEnd := bStart + info.durationMin

		// [aStart,aEnd) overlaps [bStart,bEnd) iff aStart < bEnd && bStart < aEnd.
		if start < bEnd && bStart < end {
			report.Conflicts = append(report.Conflicts, models.Conflict{
				BookingID:    b.ID,
				CustomerName: b.CustomerName,
				ServiceName:  info.name,
				StartTime:    formatClock(bStart),
				EndTime:      formatClock(bEnd),
				Status:       b.Status,
			})
		}
	}
	report.HasConflicts = len(report.Conflicts) > 0
	return report, nil
}

type serviceInfo struct {
	durationMin int
	name        string
}

// resolveService determines a booking's effective duration and display name
// from its service, memoized per call. Lookup failures fall back to the
// configured default duration rather than failing the whole check.
func (s *DefaultScheduleService) resolveService(ctx context.Context, b models.Booking, memo map[string]serviceInfo) serviceInfo {
	info := serviceInfo{durationMin: s.defaultDuration(), name: b.ServiceName}

	if b.ServiceID == "" {
		return info
	}
	if cached, ok := memo[b.ServiceID]; ok {
		if info.name == "" {
			info.name = cached.name
		}
		info.durationMin = cached.durationMin
		return info
	}

	resolved := serviceInfo{durationMin: s.defaultDuration()}
	if svc, err := s.Services.GetByID(ctx, b.ServiceID); err != nil {
		utils.GetLogger().Warn("service lookup failed, assuming default duration",
			zap.String("serviceId", b.ServiceID), zap.Error(err))
	} else {
		resolved.name = svc.Name
		if svc.DurationMinutes > 0 {
			resolved.durationMin = svc.DurationMinutes
		}
	}
	memo[b.ServiceID] = resolved

	if info.name == "" {
		info.name = resolved.name
	}
	info.durationMin = resolved.durationMin
	return info
}

func (s *DefaultScheduleService) defaultDuration() int {
	if s.DefaultDurationMin > 0 {
		return s.DefaultDurationMin
	}
	return fallbackDurationMin
}
