package availabilityRepo

import (
	"context"

	"evently/database"
	"evently/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows a listing. Dates are "YYYY-MM-DD"; empty fields are ignored.
type Filter struct {
	StaffID   string
	StartDate string
	EndDate   string
}

// AvailabilityRepository is the authoritative store of availability records,
// keyed naturally by (staffId, date).
type AvailabilityRepository interface {
	Get(ctx context.Context, filter Filter) ([]models.AvailabilityRecord, error)
	GetByID(ctx context.Context, recordID string) (*models.AvailabilityRecord, error)
	// Upsert replaces the record for (staffID, date) wholesale, creating it if
	// absent, and returns the stored record. Last write wins; window lists are
	// never merged.
	Upsert(ctx context.Context, staffID, date string, status models.AvailabilityStatus, windows []models.TimeWindow, notes string) (*models.AvailabilityRecord, error)
	Delete(ctx context.Context, recordID string) error
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("staff_availability"),
	}
}
