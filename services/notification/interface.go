package notification

import (
	"context"
	"fmt"

	"clinicbook/models"
)

// NotificationService delivers admin-facing notifications about bookings.
type NotificationService interface {
	// NotifyBookingCreated announces a new appointment.
	NotifyBookingCreated(ctx context.Context, ap models.Appointment) error
	// SendText delivers an arbitrary text message.
	SendText(ctx context.Context, text string) error
	// Configured reports whether a delivery channel is set up.
	Configured() bool
}

// FormatBookingMessage renders the Telegram text for a new appointment.
func FormatBookingMessage(ap models.Appointment) string {
	msg := fmt.Sprintf(
		"New appointment (%s)\n%s, %s\n%s - %s",
		ap.Source,
		ap.FullName,
		ap.Phone,
		ap.StartsAt.Format("2006-01-02 15:04 MST"),
		ap.EndsAt.Format("15:04 MST"),
	)
	if ap.Note != "" {
		msg += "\nNote: " + ap.Note
	}
	return msg
}
