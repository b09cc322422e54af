// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/services/notification"
	"clinicbook/utils"
)

// AppointmentStore is the slice of the appointment repository the guard
// needs. The store is the authority on the no-overlap invariant; the guard's
// own overlap query is only a fast path.
type AppointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	HasScheduledOverlap(ctx context.Context, start, end time.Time, excludeID string) (bool, error)
	CreateScheduled(ctx context.Context, ap *models.Appointment) error
	ReplaceScheduled(ctx context.Context, ap *models.Appointment) error
}

// PublicBookingInput is a booking request from the public site.
type PublicBookingInput struct {
	FullName string
	Phone    string
	Note     string
	StartsAt time.Time
	EndsAt   time.Time
}

// AdminAppointmentInput is an appointment created or edited by the admin.
type AdminAppointmentInput struct {
	FullName string
	Phone    string
	Note     string
	StartsAt time.Time
	EndsAt   time.Time
	Status   string
}

// Service guards appointment writes against double-booking.
type Service interface {
	CreatePublic(ctx context.Context, in PublicBookingInput) (*models.Appointment, error)
	CreateAdmin(ctx context.Context, in AdminAppointmentInput) (*models.Appointment, error)
	Update(ctx context.Context, id string, in AdminAppointmentInput) (*models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo   AppointmentStore
	Notify notification.NotificationService // optional
}

func validateInterval(fullName, phone string, startsAt, endsAt time.Time) error {
	if fullName == "" || phone == "" {
		return utils.ErrValidation("fullName and phone are required")
	}
	if startsAt.IsZero() || endsAt.IsZero() {
		return utils.ErrValidation("startsAt and endsAt are required")
	}
	if !startsAt.Before(endsAt) {
		return utils.ErrValidation("startsAt must be before endsAt")
	}
	return nil
}

// CreatePublic books a slot for an unauthenticated caller. The exact interval
// requested must be free of scheduled appointments; the fast-path check here
// is re-validated atomically by the store on insert.
func (s *DefaultBookingService) CreatePublic(ctx context.Context, in PublicBookingInput) (*models.Appointment, error) {
	if err := validateInterval(in.FullName, in.Phone, in.StartsAt, in.EndsAt); err != nil {
		return nil, err
	}

	conflict, err := s.Repo.HasScheduledOverlap(ctx, in.StartsAt, in.EndsAt, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, utils.ErrConflict("slot already booked")
	}

	ap := s.newAppointment(in.FullName, in.Phone, in.Note, in.StartsAt, in.EndsAt, models.SourcePublic)
	if err := s.Repo.CreateScheduled(ctx, ap); err != nil {
		if errors.Is(err, appointmentRepo.ErrOverlap) {
			return nil, utils.ErrConflict("slot already booked")
		}
		return nil, err
	}

	s.notifyCreated(*ap)
	return ap, nil
}

// CreateAdmin books on behalf of the admin. There is no fast-path shortcut;
// the store's transactional insert still enforces the invariant.
func (s *DefaultBookingService) CreateAdmin(ctx context.Context, in AdminAppointmentInput) (*models.Appointment, error) {
	if err := validateInterval(in.FullName, in.Phone, in.StartsAt, in.EndsAt); err != nil {
		return nil, err
	}

	ap := s.newAppointment(in.FullName, in.Phone, in.Note, in.StartsAt, in.EndsAt, models.SourceAdmin)
	if err := s.Repo.CreateScheduled(ctx, ap); err != nil {
		if errors.Is(err, appointmentRepo.ErrOverlap) {
			return nil, utils.ErrConflict("slot already booked")
		}
		return nil, err
	}

	s.notifyCreated(*ap)
	return ap, nil
}

// Update edits an appointment. A scheduled result interval must not overlap
// any other scheduled appointment; the store's check excludes the appointment
// itself.
func (s *DefaultBookingService) Update(ctx context.Context, id string, in AdminAppointmentInput) (*models.Appointment, error) {
	if err := validateInterval(in.FullName, in.Phone, in.StartsAt, in.EndsAt); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.AppointmentScheduled
	}
	switch status {
	case models.AppointmentScheduled, models.AppointmentCancelled, models.AppointmentCompleted:
	default:
		return nil, utils.ErrValidation("status must be scheduled, cancelled or completed")
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if appointmentRepo.IsNotFound(err) {
			return nil, utils.ErrNotFound("appointment not found")
		}
		return nil, err
	}

	ap := *existing
	ap.FullName = in.FullName
	ap.Phone = in.Phone
	ap.Note = in.Note
	ap.StartsAt = in.StartsAt.UTC()
	ap.EndsAt = in.EndsAt.UTC()
	ap.Status = status
	ap.UpdatedAt = time.Now().UTC()

	if err := s.Repo.ReplaceScheduled(ctx, &ap); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrOverlap):
			return nil, utils.ErrConflict("slot already booked")
		case appointmentRepo.IsNotFound(err):
			return nil, utils.ErrNotFound("appointment not found")
		}
		return nil, err
	}
	return &ap, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	ap, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if appointmentRepo.IsNotFound(err) {
			return nil, utils.ErrNotFound("appointment not found")
		}
		return nil, err
	}
	return ap, nil
}

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if appointmentRepo.IsNotFound(err) {
		return utils.ErrNotFound("appointment not found")
	}
	return err
}

func (s *DefaultBookingService) newAppointment(fullName, phone, note string, startsAt, endsAt time.Time, source string) *models.Appointment {
	now := time.Now().UTC()
	return &models.Appointment{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Phone:     phone,
		Note:      note,
		StartsAt:  startsAt.UTC(),
		EndsAt:    endsAt.UTC(),
		Status:    models.AppointmentScheduled,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// notifyCreated is fire-and-forget: a notification failure never fails the
// booking that triggered it.
func (s *DefaultBookingService) notifyCreated(ap models.Appointment) {
	if s.Notify == nil || !s.Notify.Configured() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notify.NotifyBookingCreated(ctx, ap); err != nil {
			utils.GetLogger().Warn("booking notification failed", zap.Error(err), zap.String("appointmentId", ap.ID))
		}
	}()
}
