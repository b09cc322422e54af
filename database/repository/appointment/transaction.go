// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicbook/models"
)

// ErrOverlap is returned when a write would violate the no-overlap invariant
// for scheduled appointments.
var ErrOverlap = errors.New("overlapping scheduled appointment")

// withTransaction runs fn inside a Mongo session transaction.
func (r *mongoAppointmentRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateScheduled inserts a new scheduled appointment after re-checking the
// overlap invariant inside the same transaction. The application-level
// check-then-insert is only a fast path; this is the authoritative guard.
func (r *mongoAppointmentRepo) CreateScheduled(ctx context.Context, ap *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(ap.StartsAt, ap.EndsAt, ""))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}
		if _, err := r.coll.InsertOne(sc, ap); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	})
}

// ReplaceScheduled replaces an existing appointment, re-checking the overlap
// invariant against every scheduled appointment except the one being
// replaced. Returns mongo.ErrNoDocuments when the id does not exist.
func (r *mongoAppointmentRepo) ReplaceScheduled(ctx context.Context, ap *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if ap.Status == models.AppointmentScheduled {
			count, err := r.coll.CountDocuments(sc, overlapFilter(ap.StartsAt, ap.EndsAt, ap.ID))
			if err != nil {
				return fmt.Errorf("overlap check failed: %w", err)
			}
			if count > 0 {
				return ErrOverlap
			}
		}
		res, err := r.coll.ReplaceOne(sc, bson.M{"id": ap.ID}, ap)
		if err != nil {
			return fmt.Errorf("replace appointment failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	})
}
