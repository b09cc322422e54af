// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"
	"time"

	"clinicbook/models"
	"clinicbook/utils"
)

// ScheduleSource yields the current schedule. Implementations may serve a
// briefly cached copy; the schedule changes only via explicit admin action.
type ScheduleSource interface {
	Current(ctx context.Context) (models.Schedule, error)
}

// AppointmentSource yields scheduled appointments overlapping a window.
// Appointment data must be read fresh per request, never cached, or
// already-booked slots would be presented as available.
type AppointmentSource interface {
	ListScheduledOverlapping(ctx context.Context, start, end time.Time) ([]models.Appointment, error)
}

// Service computes bookable slots for a date range.
type Service interface {
	Range(ctx context.Context, startISO, endISO string) (map[string][]models.GeneratedSlot, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Schedules    ScheduleSource
	Appointments AppointmentSource
}

// Range returns the bookable slots for every date in [startISO, endISO]
// inclusive. Dates without template or override slots map to an empty list
// rather than being omitted. The request fails as a whole when the schedule
// or any day's appointments cannot be loaded.
func (s *DefaultAvailabilityService) Range(ctx context.Context, startISO, endISO string) (map[string][]models.GeneratedSlot, error) {
	start, err := time.Parse(dateLayout, startISO)
	if err != nil {
		return nil, utils.ErrValidation("start and end are required (YYYY-MM-DD)")
	}
	end, err := time.Parse(dateLayout, endISO)
	if err != nil {
		return nil, utils.ErrValidation("start and end are required (YYYY-MM-DD)")
	}

	sched, err := s.Schedules.Current(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(sched.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule has invalid timezone %q: %w", sched.Timezone, err)
	}

	result := make(map[string][]models.GeneratedSlot)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateISO := d.Format(dateLayout)

		slots := GenerateDailySlots(dateISO, sched, loc)
		if len(slots) == 0 {
			result[dateISO] = []models.GeneratedSlot{}
			continue
		}

		// Query window: the date's local midnight-to-midnight, as UTC
		// instants. AddDate lands on the next local midnight across DST.
		dayStart, err := time.ParseInLocation(dateLayout, dateISO, loc)
		if err != nil {
			return nil, err
		}
		dayEnd := dayStart.AddDate(0, 0, 1)

		appts, err := s.Appointments.ListScheduledOverlapping(ctx, dayStart.UTC(), dayEnd.UTC())
		if err != nil {
			return nil, err
		}
		result[dateISO] = SubtractAppointments(slots, appts)
	}
	return result, nil
}
