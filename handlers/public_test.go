package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/utils"
)

type fakeAvailability struct {
	days map[string][]models.GeneratedSlot
	err  error
}

func (f *fakeAvailability) Range(ctx context.Context, startISO, endISO string) (map[string][]models.GeneratedSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}

type fakeBooking struct {
	created *models.Appointment
	err     error
}

func (f *fakeBooking) CreatePublic(ctx context.Context, in booking.PublicBookingInput) (*models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakeBooking) CreateAdmin(ctx context.Context, in booking.AdminAppointmentInput) (*models.Appointment, error) {
	return f.created, f.err
}

func (f *fakeBooking) Update(ctx context.Context, id string, in booking.AdminAppointmentInput) (*models.Appointment, error) {
	return f.created, f.err
}

func (f *fakeBooking) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return f.created, f.err
}

func (f *fakeBooking) List(ctx context.Context) ([]models.Appointment, error) {
	return nil, f.err
}

func (f *fakeBooking) Delete(ctx context.Context, id string) error {
	return f.err
}

func newTestRouter(h *PublicHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/public/availability", h.GetAvailability)
	r.POST("/api/public/appointments", h.CreateAppointment)
	return r
}

func TestGetAvailability_MissingParams(t *testing.T) {
	h := NewPublicHandler(&fakeAvailability{}, &fakeBooking{})
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/availability?start=2025-06-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetAvailability_FormatsUTCTimestamps(t *testing.T) {
	slot := models.GeneratedSlot{
		StartsAt: time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC),
	}
	h := NewPublicHandler(&fakeAvailability{days: map[string][]models.GeneratedSlot{
		"2025-06-02": {slot},
		"2025-06-03": {},
	}}, &fakeBooking{})
	r := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/availability?start=2025-06-02&end=2025-06-03", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body map[string][]map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if got := body["2025-06-02"][0]["startsAt"]; got != "2025-06-02T07:00:00Z" {
		t.Fatalf("expected RFC3339 UTC start, got %q", got)
	}
	if slots, ok := body["2025-06-03"]; !ok || len(slots) != 0 {
		t.Fatalf("expected empty day to be present as [], got %+v", body)
	}
}

func TestCreateAppointment_ConflictMapsTo409(t *testing.T) {
	h := NewPublicHandler(&fakeAvailability{}, &fakeBooking{err: utils.ErrConflict("slot already booked")})
	r := newTestRouter(h)

	payload, _ := json.Marshal(map[string]string{
		"fullName": "Anna Petrova",
		"phone":    "+7 900 000-00-00",
		"startsAt": "2025-06-02T07:30:00Z",
		"endsAt":   "2025-06-02T08:00:00Z",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/appointments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateAppointment_ReturnsCreatedID(t *testing.T) {
	created := &models.Appointment{ID: "abc-123"}
	h := NewPublicHandler(&fakeAvailability{}, &fakeBooking{created: created})
	r := newTestRouter(h)

	payload, _ := json.Marshal(map[string]string{
		"fullName": "Anna Petrova",
		"phone":    "+7 900 000-00-00",
		"startsAt": "2025-06-02T07:30:00Z",
		"endsAt":   "2025-06-02T08:00:00Z",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/appointments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if body["id"] != "abc-123" {
		t.Fatalf("expected created id, got %q", body["id"])
	}
}
