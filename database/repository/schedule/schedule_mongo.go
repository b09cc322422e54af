// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicbook/models"
)

func (r *mongoScheduleRepo) Get(ctx context.Context) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.Schedule
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&sched)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return &sched, nil
}

func (r *mongoScheduleRepo) Replace(ctx context.Context, sched models.Schedule) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sched.UpdatedAt = time.Now().UTC()

	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var replaced models.Schedule
	err := r.coll.FindOneAndReplace(ctx, bson.M{}, sched, opts).Decode(&replaced)
	if err != nil {
		return nil, fmt.Errorf("failed to replace schedule: %w", err)
	}
	return &replaced, nil
}
