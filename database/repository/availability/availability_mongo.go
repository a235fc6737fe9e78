package availabilityRepo

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"evently/models"
)

func (r *mongoAvailabilityRepo) Get(ctx context.Context, filter Filter) ([]models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.StaffID != "" {
		query["staffId"] = filter.StaffID
	}
	if filter.StartDate != "" || filter.EndDate != "" {
		dateRange := bson.M{}
		if filter.StartDate != "" {
			dateRange["$gte"] = filter.StartDate
		}
		if filter.EndDate != "" {
			dateRange["$lte"] = filter.EndDate
		}
		query["date"] = dateRange
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AvailabilityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	// Mongo sorts by date; the secondary ordering by earliest window start is
	// applied here since it is a computed field.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].EarliestWindowStart() < records[j].EarliestWindowStart()
	})
	return records, nil
}

func (r *mongoAvailabilityRepo) GetByID(ctx context.Context, recordID string) (*models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.AvailabilityRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": recordID}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, staffID, date string, status models.AvailabilityStatus, windows []models.TimeWindow, notes string) (*models.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if windows == nil {
		windows = []models.TimeWindow{}
	}
	now := time.Now()
	filter := bson.M{"staffId": staffID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"timeWindows": windows,
			"notes":       notes,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"staffId":   staffID,
			"date":      date,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record models.AvailabilityRecord
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *mongoAvailabilityRepo) Delete(ctx context.Context, recordID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": recordID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
