package schedule

import (
	"context"
	"encoding/json"
	"time"

	availabilityRepo "evently/database/repository/availability"
	bookingRepo "evently/database/repository/booking"
	"evently/models"
	"evently/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GetDailySchedule composes active bookings and availability records for one
// calendar date into a single view with summary counts. This is a display
// aggregation; it performs no conflict detection.
func (s *DefaultScheduleService) GetDailySchedule(ctx context.Context, date, staffID string) (models.DailySchedule, error) {
	day, err := parseDate("date", date)
	if err != nil {
		return models.DailySchedule{}, err
	}

	cacheKey := utils.ScheduleCacheKey(date, staffID)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	bookings, err := s.Bookings.FindActiveOnDate(ctx, day, bookingRepo.QueryOptions{
		StaffID:          staffID,
		ExcludedStatuses: scheduleExcludedStatuses,
	})
	if err != nil {
		return models.DailySchedule{}, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	availability, err := s.Availability.Get(ctx, availabilityRepo.Filter{
		StaffID:   staffID,
		StartDate: date,
		EndDate:   date,
	})
	if err != nil {
		return models.DailySchedule{}, err
	}
	if availability == nil {
		availability = []models.AvailabilityRecord{}
	}

	summary := models.ScheduleSummary{TotalBookings: len(bookings)}
	for _, rec := range availability {
		switch rec.Status {
		case models.StatusAvailable:
			summary.TotalAvailableStaff++
		case models.StatusBusy:
			summary.BusySlots++
		}
	}

	view := models.DailySchedule{
		Date:         date,
		Bookings:     bookings,
		Availability: availability,
		Summary:      summary,
	}
	s.cacheSet(ctx, cacheKey, view)
	return view, nil
}

// cacheGet returns a cached daily schedule if one exists. Cache failures are
// logged and treated as misses.
func (s *DefaultScheduleService) cacheGet(ctx context.Context, key string) (models.DailySchedule, bool) {
	if s.Cache == nil {
		return models.DailySchedule{}, false
	}
	raw, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
		}
		return models.DailySchedule{}, false
	}
	var view models.DailySchedule
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		utils.GetLogger().Warn("schedule cache entry corrupt, ignoring", zap.String("key", key), zap.Error(err))
		return models.DailySchedule{}, false
	}
	return view, true
}

func (s *DefaultScheduleService) cacheSet(ctx context.Context, key string, view models.DailySchedule) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.Cache.Set(ctx, key, raw, ttl).Err(); err != nil {
		utils.GetLogger().Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidateScheduleCache drops cached views touching the given date: the
// per-staff entry and the aggregate (all-staff) entry.
func (s *DefaultScheduleService) invalidateScheduleCache(ctx context.Context, date, staffID string) {
	if s.Cache == nil {
		return
	}
	keys := []string{utils.ScheduleCacheKey(date, "")}
	if staffID != "" {
		keys = append(keys, utils.ScheduleCacheKey(date, staffID))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("schedule cache invalidation failed", zap.String("date", date), zap.Error(err))
	}
}
