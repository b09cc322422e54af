// File: services/availability/slots.go
package availability

import (
	"time"

	"clinicbook/models"
)

const dateLayout = "2006-01-02"

// GenerateDailySlots produces the ordered bookable intervals for one calendar
// date. An override for the exact date replaces the weekday template outright,
// even when its slot list is empty; with neither configured the result is
// empty, not an error.
//
// Minute offsets are anchored at the date's midnight in loc and advanced by
// real duration, so a DST transition shifts the wall clock the same way the
// stored offsets do. Output timestamps are UTC instants.
func GenerateDailySlots(dateISO string, sched models.Schedule, loc *time.Location) []models.GeneratedSlot {
	midnight, err := time.ParseInLocation(dateLayout, dateISO, loc)
	if err != nil {
		return nil
	}

	var defs []models.SlotDefinition
	if override, ok := sched.OverrideFor(dateISO); ok {
		defs = override.Slots
	} else if tmpl, ok := sched.TemplateFor(int(midnight.Weekday())); ok {
		defs = tmpl.Slots
	}

	var slots []models.GeneratedSlot
	for _, def := range defs {
		dur := time.Duration(def.DurationMinutes) * time.Minute
		if dur <= 0 {
			continue
		}
		start := midnight.Add(time.Duration(def.StartMinute) * time.Minute)
		end := midnight.Add(time.Duration(def.EndMinute) * time.Minute)

		// Back-to-back intervals; a trailing remainder shorter than dur is
		// dropped, never emitted short.
		for cursor := start; !cursor.Add(dur).After(end); cursor = cursor.Add(dur) {
			slots = append(slots, models.GeneratedSlot{
				StartsAt: cursor.UTC(),
				EndsAt:   cursor.Add(dur).UTC(),
			})
		}
	}
	return slots
}

// SubtractAppointments removes every slot that strictly overlaps a scheduled
// appointment. Touching endpoints do not conflict, and cancelled or completed
// appointments never block a slot.
func SubtractAppointments(slots []models.GeneratedSlot, appts []models.Appointment) []models.GeneratedSlot {
	free := make([]models.GeneratedSlot, 0, len(slots))
	for _, slot := range slots {
		blocked := false
		for _, ap := range appts {
			if ap.Status != models.AppointmentScheduled {
				continue
			}
			if ap.Overlaps(slot.StartsAt, slot.EndsAt) {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, slot)
		}
	}
	return free
}
