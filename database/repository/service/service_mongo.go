package serviceRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"evently/models"
)

func (r *mongoEventServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.EventService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.EventService
	if err := r.coll.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *mongoEventServiceRepo) List(ctx context.Context) ([]models.EventService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.EventService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoEventServiceRepo) Create(ctx context.Context, svc models.EventService) (*models.EventService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.Active = true
	svc.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}
