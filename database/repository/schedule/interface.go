// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/database"
	"clinicbook/models"
)

// ScheduleRepository persists the singleton schedule document.
type ScheduleRepository interface {
	// Get returns the configured schedule, or (nil, nil) when no schedule
	// document exists yet. The "not configured" case is an explicit branch
	// for callers, not an error.
	Get(ctx context.Context) (*models.Schedule, error)
	// Replace upserts the whole schedule document, replacing any prior one.
	Replace(ctx context.Context, sched models.Schedule) (*models.Schedule, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedule"),
	}
}
