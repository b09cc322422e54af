package models

import "time"

// DefaultTimezone is used when no schedule document has been configured yet.
const DefaultTimezone = "Europe/Moscow"

// SlotDefinition describes one bookable window within a day, expressed as
// minutes from local midnight. Fixed-length slots of DurationMinutes are
// carved out of [StartMinute, EndMinute).
type SlotDefinition struct {
	StartMinute     int `bson:"startMinute" json:"startMinute"`         // e.g., 570 for 9:30
	EndMinute       int `bson:"endMinute" json:"endMinute"`             // exclusive upper bound
	DurationMinutes int `bson:"durationMinutes" json:"durationMinutes"` // length of each bookable unit
}

// WeeklyTemplate is the recurring schedule for one weekday (0 = Sunday).
type WeeklyTemplate struct {
	Weekday int              `bson:"weekday" json:"weekday"`
	Slots   []SlotDefinition `bson:"slots" json:"slots"`
}

// Override replaces the weekday template for a single date ("2006-01-02").
// An override with an empty slot list closes the day entirely.
type Override struct {
	Date  string           `bson:"date" json:"date"`
	Slots []SlotDefinition `bson:"slots" json:"slots"`
}

// Schedule is the singleton scheduling document. It is replaced wholesale by
// the admin upsert; there is no partial-field mutation.
type Schedule struct {
	Timezone  string           `bson:"timezone" json:"timezone"`
	Days      []WeeklyTemplate `bson:"days" json:"days"`
	Overrides []Override       `bson:"overrides" json:"overrides"`
	UpdatedAt time.Time        `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EmptySchedule is the explicit "nothing configured" value: no days, no
// overrides, default timezone. Availability over it is empty for every date.
func EmptySchedule() Schedule {
	return Schedule{
		Timezone:  DefaultTimezone,
		Days:      []WeeklyTemplate{},
		Overrides: []Override{},
	}
}

// OverrideFor returns the override for the given date, if any.
func (s Schedule) OverrideFor(dateISO string) (Override, bool) {
	for _, o := range s.Overrides {
		if o.Date == dateISO {
			return o, true
		}
	}
	return Override{}, false
}

// TemplateFor returns the weekly template for the given weekday (0 = Sunday).
func (s Schedule) TemplateFor(weekday int) (WeeklyTemplate, bool) {
	for _, d := range s.Days {
		if d.Weekday == weekday {
			return d, true
		}
	}
	return WeeklyTemplate{}, false
}

// GeneratedSlot is an ephemeral bookable interval produced by the slot
// generator. Both timestamps are UTC instants; it is never persisted.
type GeneratedSlot struct {
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}
