package bookingRepo

import (
	"context"
	"time"

	"evently/database"
	"evently/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// QueryOptions narrows a same-day booking query. The excluded-status set is
// supplied by the caller because the policy differs per operation: schedule
// views exclude only cancelled bookings, conflict checks also exclude
// completed ones.
type QueryOptions struct {
	StaffID          string
	ExcludeBookingID string
	ExcludedStatuses []models.BookingStatus
}

// BookingRepository reads and writes event booking records.
type BookingRepository interface {
	// FindActiveOnDate returns bookings whose eventDate falls on the same
	// calendar day as day (server-local), sorted by event time ascending.
	FindActiveOnDate(ctx context.Context, day time.Time, opts QueryOptions) ([]models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
