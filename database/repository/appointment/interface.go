// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/database"
	"clinicbook/models"
)

// AppointmentRepository persists appointments and owns the no-overlap
// invariant for scheduled ones: CreateScheduled and ReplaceScheduled re-check
// for conflicts inside a transaction, so concurrent requests for the same
// interval cannot both commit.
type AppointmentRepository interface {
	List(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error

	// ListScheduledOverlapping returns scheduled appointments whose
	// [startsAt, endsAt) interval strictly overlaps [start, end).
	ListScheduledOverlapping(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
	// HasScheduledOverlap reports whether any scheduled appointment other
	// than excludeID overlaps [start, end). Empty excludeID excludes nothing.
	HasScheduledOverlap(ctx context.Context, start, end time.Time, excludeID string) (bool, error)

	CreateScheduled(ctx context.Context, ap *models.Appointment) error
	ReplaceScheduled(ctx context.Context, ap *models.Appointment) error

	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
