package booking

import (
	"context"
	"time"

	bookingRepo "evently/database/repository/booking"
	serviceRepo "evently/database/repository/service"
	"evently/models"

	"github.com/go-redis/redis/v8"
)

// CreateInput is the payload for creating an event booking.
type CreateInput struct {
	StaffID       string
	CustomerID    string
	CustomerName  string
	ServiceID     string
	EventDate     time.Time
	EventLocation string
	Status        models.BookingStatus
}

// BookingService manages event booking records and the event-service catalog.
type BookingService interface {
	ListOnDate(ctx context.Context, date, staffID string) ([]models.Booking, error)
	Create(ctx context.Context, input CreateInput) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error)

	ListServices(ctx context.Context) ([]models.EventService, error)
	CreateService(ctx context.Context, svc models.EventService) (*models.EventService, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services serviceRepo.EventServiceRepository

	// Cache is optional; used only to drop stale daily-schedule views when a
	// booking changes.
	Cache *redis.Client
}
