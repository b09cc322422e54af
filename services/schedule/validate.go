// File: services/schedule/validate.go
package schedule

import (
	"fmt"
	"time"

	"clinicbook/models"
	"clinicbook/utils"
)

const minutesPerDay = 24 * 60

// Validate checks the structural invariants of a schedule document: the
// timezone must resolve, weekdays must be 0-6 and unique, override dates must
// parse and be unique, and every slot definition must have sane minute
// bounds. Overlapping definitions within one day are deliberately accepted;
// the generator emits them as-is.
func Validate(sched models.Schedule) error {
	if _, err := time.LoadLocation(sched.Timezone); err != nil {
		return utils.ErrValidation(fmt.Sprintf("unknown timezone %q", sched.Timezone))
	}

	seenDays := make(map[int]bool)
	for _, day := range sched.Days {
		if day.Weekday < 0 || day.Weekday > 6 {
			return utils.ErrValidation(fmt.Sprintf("weekday must be 0-6, got %d", day.Weekday))
		}
		if seenDays[day.Weekday] {
			return utils.ErrValidation(fmt.Sprintf("duplicate weekday %d", day.Weekday))
		}
		seenDays[day.Weekday] = true
		if err := validateSlots(day.Slots); err != nil {
			return err
		}
	}

	seenDates := make(map[string]bool)
	for _, override := range sched.Overrides {
		if _, err := time.Parse("2006-01-02", override.Date); err != nil {
			return utils.ErrValidation(fmt.Sprintf("override date %q is not YYYY-MM-DD", override.Date))
		}
		if seenDates[override.Date] {
			return utils.ErrValidation(fmt.Sprintf("duplicate override date %s", override.Date))
		}
		seenDates[override.Date] = true
		if err := validateSlots(override.Slots); err != nil {
			return err
		}
	}
	return nil
}

func validateSlots(defs []models.SlotDefinition) error {
	for _, def := range defs {
		if def.StartMinute < 0 || def.StartMinute >= minutesPerDay {
			return utils.ErrValidation(fmt.Sprintf("startMinute %d out of range", def.StartMinute))
		}
		if def.EndMinute <= def.StartMinute || def.EndMinute > minutesPerDay {
			return utils.ErrValidation(fmt.Sprintf("endMinute %d must be after startMinute and within the day", def.EndMinute))
		}
		if def.DurationMinutes <= 0 {
			return utils.ErrValidation(fmt.Sprintf("durationMinutes must be positive, got %d", def.DurationMinutes))
		}
	}
	return nil
}
