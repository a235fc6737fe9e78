package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "evently/database/repository/booking"
	"evently/models"
	"evently/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ListOnDate returns the date's bookings that are not cancelled, optionally
// narrowed to one staff member, sorted by event time ascending.
func (s *DefaultBookingService) ListOnDate(ctx context.Context, date, staffID string) ([]models.Booking, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	bookings, err := s.Repo.FindActiveOnDate(ctx, day, bookingRepo.QueryOptions{
		StaffID:          staffID,
		ExcludedStatuses: []models.BookingStatus{models.BookingCancelled},
	})
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// Create stores a new booking, denormalizing the service name onto the
// document. New bookings start as inquiries unless a valid status is given.
func (s *DefaultBookingService) Create(ctx context.Context, input CreateInput) (*models.Booking, error) {
	if input.CustomerID == "" {
		return nil, &ValidationError{Field: "customerId", Message: "customer is required"}
	}
	if input.EventDate.IsZero() {
		return nil, &ValidationError{Field: "eventDate", Message: "event date is required"}
	}

	status := input.Status
	if status == "" {
		status = models.BookingInquiry
	}
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", input.Status)}
	}

	booking := models.Booking{
		StaffID:       input.StaffID,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		ServiceID:     input.ServiceID,
		EventDate:     input.EventDate,
		EventLocation: input.EventLocation,
		Status:        status,
	}

	if input.ServiceID != "" {
		svc, err := s.Services.GetByID(ctx, input.ServiceID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &NotFoundError{Message: fmt.Sprintf("service %s not found", input.ServiceID)}
			}
			return nil, err
		}
		booking.ServiceName = svc.Name
	}

	created, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.invalidateScheduleCache(ctx, created.EventDate, created.StaffID)
	utils.GetLogger().Info("booking created",
		zap.String("bookingId", created.ID),
		zap.String("staffId", created.StaffID),
		zap.Time("eventDate", created.EventDate))
	return created, nil
}

// UpdateStatus moves a booking along its lifecycle, rejecting transitions the
// lifecycle does not allow.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: fmt.Sprintf("booking %s not found", bookingID)}
		}
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("cannot move booking from %q to %q", current.Status, status),
		}
	}

	updated, err := s.Repo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: fmt.Sprintf("booking %s not found", bookingID)}
		}
		return nil, err
	}

	s.invalidateScheduleCache(ctx, updated.EventDate, updated.StaffID)
	return updated, nil
}

// ListServices returns the active event-service catalog.
func (s *DefaultBookingService) ListServices(ctx context.Context) ([]models.EventService, error) {
	services, err := s.Services.List(ctx)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.EventService{}
	}
	return services, nil
}

// CreateService adds a catalog entry. The duration feeds conflict detection,
// so it must be positive.
func (s *DefaultBookingService) CreateService(ctx context.Context, svc models.EventService) (*models.EventService, error) {
	if svc.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "service name is required"}
	}
	if svc.DurationMinutes <= 0 {
		return nil, &ValidationError{Field: "durationMinutes", Message: "duration must be a positive number of minutes"}
	}
	return s.Services.Create(ctx, svc)
}

// invalidateScheduleCache drops the cached daily-schedule views the booking's
// event date touches.
func (s *DefaultBookingService) invalidateScheduleCache(ctx context.Context, eventDate time.Time, staffID string) {
	if s.Cache == nil {
		return
	}
	date := eventDate.Format(dateLayout)
	keys := []string{utils.ScheduleCacheKey(date, "")}
	if staffID != "" {
		keys = append(keys, utils.ScheduleCacheKey(date, staffID))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("schedule cache invalidation failed",
			zap.String("date", date), zap.Error(err))
	}
}
