package models

import "time"

// Appointment statuses. Only scheduled appointments block availability.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment creation sources.
const (
	SourceAdmin  = "admin"
	SourcePublic = "public"
)

// Appointment is a booked visit. FullName, Phone and Note are opaque to the
// scheduling logic; StartsAt/EndsAt are UTC instants.
type Appointment struct {
	ID        string    `bson:"id" json:"id"` // UUID
	FullName  string    `bson:"fullName" json:"fullName"`
	Phone     string    `bson:"phone" json:"phone"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	StartsAt  time.Time `bson:"startsAt" json:"startsAt"`
	EndsAt    time.Time `bson:"endsAt" json:"endsAt"`
	Status    string    `bson:"status" json:"status"`
	Source    string    `bson:"source" json:"source"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether the appointment's [StartsAt, EndsAt) interval
// strictly overlaps [start, end). Touching endpoints do not overlap.
func (a Appointment) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && a.EndsAt.After(start)
}
