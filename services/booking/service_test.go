package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/utils"
)

// fakeStore mirrors the store contract: the overlap re-check and the insert
// happen under one lock, like the Mongo transaction does.
type fakeStore struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (f *fakeStore) List(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, len(f.appts))
	copy(out, f.appts)
	return out, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ap := range f.appts {
		if ap.ID == id {
			found := ap
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ap := range f.appts {
		if ap.ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeStore) hasOverlapLocked(start, end time.Time, excludeID string) bool {
	for _, ap := range f.appts {
		if ap.ID == excludeID || ap.Status != models.AppointmentScheduled {
			continue
		}
		if ap.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func (f *fakeStore) HasScheduledOverlap(ctx context.Context, start, end time.Time, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasOverlapLocked(start, end, excludeID), nil
}

func (f *fakeStore) CreateScheduled(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasOverlapLocked(ap.StartsAt, ap.EndsAt, "") {
		return appointmentRepo.ErrOverlap
	}
	f.appts = append(f.appts, *ap)
	return nil
}

func (f *fakeStore) ReplaceScheduled(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ap.Status == models.AppointmentScheduled && f.hasOverlapLocked(ap.StartsAt, ap.EndsAt, ap.ID) {
		return appointmentRepo.ErrOverlap
	}
	for i := range f.appts {
		if f.appts[i].ID == ap.ID {
			f.appts[i] = *ap
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

var (
	slotStart = time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC)
	slotEnd   = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
)

func publicInput(start, end time.Time) PublicBookingInput {
	return PublicBookingInput{
		FullName: "Anna Petrova",
		Phone:    "+7 900 000-00-00",
		StartsAt: start,
		EndsAt:   end,
	}
}

func TestCreatePublic_Validation(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeStore{}}
	ctx := context.Background()

	cases := []PublicBookingInput{
		{Phone: "+7", StartsAt: slotStart, EndsAt: slotEnd},                       // no name
		{FullName: "Anna", StartsAt: slotStart, EndsAt: slotEnd},                  // no phone
		{FullName: "Anna", Phone: "+7"},                                           // no times
		{FullName: "Anna", Phone: "+7", StartsAt: slotEnd, EndsAt: slotStart},     // reversed
		{FullName: "Anna", Phone: "+7", StartsAt: slotStart, EndsAt: slotStart},   // zero-length
	}
	for i, in := range cases {
		_, err := svc.CreatePublic(ctx, in)
		var ve *utils.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestCreatePublic_Succeeds(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}

	ap, err := svc.CreatePublic(context.Background(), publicInput(slotStart, slotEnd))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.ID == "" {
		t.Fatalf("expected generated appointment ID")
	}
	if ap.Status != models.AppointmentScheduled || ap.Source != models.SourcePublic {
		t.Fatalf("expected scheduled/public, got %s/%s", ap.Status, ap.Source)
	}
}

func TestCreatePublic_SecondBookingConflicts(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}
	ctx := context.Background()

	if _, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	_, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd))
	var ce *utils.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError on second booking, got %v", err)
	}
}

func TestCreatePublic_TouchingIntervalsDoNotConflict(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}
	ctx := context.Background()

	if _, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.CreatePublic(ctx, publicInput(slotEnd, slotEnd.Add(30*time.Minute))); err != nil {
		t.Fatalf("adjacent booking should succeed: %v", err)
	}
}

func TestCreatePublic_ConcurrentPairAdmitsOne(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreatePublic(context.Background(), publicInput(slotStart, slotEnd))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var ce *utils.ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("attempt %d: expected ConflictError, got %v", i, err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly 1 successful booking, got %d", succeeded)
	}

	// No two scheduled appointments may overlap.
	appts, _ := store.List(context.Background())
	for i := range appts {
		for j := i + 1; j < len(appts); j++ {
			a, b := appts[i], appts[j]
			if a.Status == models.AppointmentScheduled && b.Status == models.AppointmentScheduled &&
				a.Overlaps(b.StartsAt, b.EndsAt) {
				t.Fatalf("invariant violated: %v and %v overlap", a, b)
			}
		}
	}
}

func TestCreateAdmin_HonorsInvariant(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}
	ctx := context.Background()

	if _, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd)); err != nil {
		t.Fatalf("public booking failed: %v", err)
	}
	_, err := svc.CreateAdmin(ctx, AdminAppointmentInput{
		FullName: "Dr. Edit",
		Phone:    "+7 900 111-11-11",
		StartsAt: slotStart.Add(15 * time.Minute),
		EndsAt:   slotEnd.Add(15 * time.Minute),
	})
	var ce *utils.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError on admin double-book, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeStore{}}

	_, err := svc.Update(context.Background(), "missing", AdminAppointmentInput{
		FullName: "Anna",
		Phone:    "+7",
		StartsAt: slotStart,
		EndsAt:   slotEnd,
	})
	var ne *utils.NotFoundError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdate_OwnIntervalExcludedFromOverlapCheck(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}
	ctx := context.Background()

	ap, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	// Shifting within the same window overlaps only itself.
	updated, err := svc.Update(ctx, ap.ID, AdminAppointmentInput{
		FullName: ap.FullName,
		Phone:    ap.Phone,
		StartsAt: slotStart.Add(10 * time.Minute),
		EndsAt:   slotEnd.Add(10 * time.Minute),
	})
	if err != nil {
		t.Fatalf("self-overlapping update should succeed: %v", err)
	}
	if !updated.StartsAt.Equal(slotStart.Add(10 * time.Minute)) {
		t.Fatalf("expected shifted start, got %v", updated.StartsAt)
	}
}

func TestUpdate_CancellationFreesSlot(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}
	ctx := context.Background()

	ap, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := svc.Update(ctx, ap.ID, AdminAppointmentInput{
		FullName: ap.FullName,
		Phone:    ap.Phone,
		StartsAt: slotStart,
		EndsAt:   slotEnd,
		Status:   models.AppointmentCancelled,
	}); err != nil {
		t.Fatalf("cancellation failed: %v", err)
	}

	if _, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd)); err != nil {
		t.Fatalf("expected cancelled slot to be bookable again: %v", err)
	}
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	store := &fakeStore{}
	svc := &DefaultBookingService{Repo: store}
	ctx := context.Background()

	ap, err := svc.CreatePublic(ctx, publicInput(slotStart, slotEnd))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	_, err = svc.Update(ctx, ap.ID, AdminAppointmentInput{
		FullName: ap.FullName,
		Phone:    ap.Phone,
		StartsAt: slotStart,
		EndsAt:   slotEnd,
		Status:   "paused",
	})
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeStore{}}

	err := svc.Delete(context.Background(), "missing")
	var ne *utils.NotFoundError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
