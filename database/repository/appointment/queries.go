// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"clinicbook/models"
)

// overlapFilter matches scheduled appointments strictly overlapping
// [start, end). Touching endpoints do not match.
func overlapFilter(start, end time.Time, excludeID string) bson.M {
	filter := bson.M{
		"status":   models.AppointmentScheduled,
		"startsAt": bson.M{"$lt": end},
		"endsAt":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoAppointmentRepo) ListScheduledOverlapping(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, overlapFilter(start, end, ""))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) HasScheduledOverlap(ctx context.Context, start, end time.Time, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, overlapFilter(start, end, excludeID))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
