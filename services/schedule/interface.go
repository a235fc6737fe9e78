package schedule

import (
	"context"
	"time"

	availabilityRepo "evently/database/repository/availability"
	bookingRepo "evently/database/repository/booking"
	serviceRepo "evently/database/repository/service"
	"evently/models"

	"github.com/go-redis/redis/v8"
)

// Requester identifies who is performing a mutation, as asserted by the auth
// middleware.
type Requester struct {
	StaffID string
	Role    string
}

// RoleAdmin marks requesters allowed to mutate any staff member's records.
const RoleAdmin = "admin"

// ListFilter narrows an availability listing. Dates are "YYYY-MM-DD".
type ListFilter struct {
	StaffID   string
	StartDate string
	EndDate   string
}

// UpsertInput is a full replacement submission for one (staff, date) key.
type UpsertInput struct {
	StaffID     string
	Date        string
	Status      models.AvailabilityStatus
	TimeWindows []models.TimeWindow
	Notes       string
}

// ScheduleService is the staff availability and booking-conflict core.
type ScheduleService interface {
	ListAvailability(ctx context.Context, filter ListFilter) ([]models.AvailabilityRecord, error)
	UpsertAvailability(ctx context.Context, input UpsertInput) (*models.AvailabilityRecord, error)
	DeleteAvailability(ctx context.Context, recordID string, requester Requester) error
	CheckConflicts(ctx context.Context, date, startTime, endTime, excludeBookingID string) (models.ConflictReport, error)
	GetDailySchedule(ctx context.Context, date, staffID string) (models.DailySchedule, error)
	BuildGrid(ctx context.Context, startDate, endDate, staffID string) ([]models.CalendarCell, error)
}

// DefaultScheduleService composes the availability store, the booking query
// adapter and the service catalog into the schedule core.
type DefaultScheduleService struct {
	Availability availabilityRepo.AvailabilityRepository
	Bookings     bookingRepo.BookingRepository
	Services     serviceRepo.EventServiceRepository

	// Cache is optional; a nil client disables daily-schedule caching.
	Cache    *redis.Client
	CacheTTL time.Duration

	// DefaultDurationMin is the assumed booking length when the service
	// lookup yields nothing usable.
	DefaultDurationMin int
}

// Excluded-status policy per operation. The daily schedule shows everything
// that is not cancelled; conflict checks additionally skip completed bookings
// since a finished event cannot conflict with a future one. Kept separate on
// purpose, do not unify without confirming the intended behavior.
var (
	scheduleExcludedStatuses = []models.BookingStatus{models.BookingCancelled}
	conflictExcludedStatuses = []models.BookingStatus{models.BookingCancelled, models.BookingCompleted}
)
