package serviceRepo

import (
	"context"

	"evently/database"
	"evently/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventServiceRepository is the read store of the event-service catalog,
// consulted for booking durations.
type EventServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*models.EventService, error)
	List(ctx context.Context) ([]models.EventService, error)
	Create(ctx context.Context, svc models.EventService) (*models.EventService, error)
}

type mongoEventServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoEventServiceRepo constructs a MongoDB-backed EventServiceRepository.
func NewMongoEventServiceRepo() EventServiceRepository {
	return &mongoEventServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
