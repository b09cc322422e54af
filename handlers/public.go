package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/services/booking"
	"clinicbook/utils"
)

// PublicHandler serves the unauthenticated availability and booking endpoints.
type PublicHandler struct {
	Availability availability.Service
	Booking      booking.Service
}

func NewPublicHandler(avail availability.Service, book booking.Service) *PublicHandler {
	return &PublicHandler{Availability: avail, Booking: book}
}

type timeSlotResponse struct {
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
}

func toSlotResponses(slots []models.GeneratedSlot) []timeSlotResponse {
	out := make([]timeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, timeSlotResponse{
			StartsAt: s.StartsAt.Format(time.RFC3339),
			EndsAt:   s.EndsAt.Format(time.RFC3339),
		})
	}
	return out
}

// GetAvailability handles GET /api/public/availability?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "start and end are required (YYYY-MM-DD)")
		return
	}

	days, err := h.Availability.Range(c.Request.Context(), start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	result := make(map[string][]timeSlotResponse, len(days))
	for date, slots := range days {
		result[date] = toSlotResponses(slots)
	}
	c.JSON(http.StatusOK, result)
}

type publicBookingRequest struct {
	FullName string    `json:"fullName"`
	Phone    string    `json:"phone"`
	Note     string    `json:"note"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// CreateAppointment handles POST /api/public/appointments.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req publicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "invalid request body")
		return
	}

	ap, err := h.Booking.CreatePublic(c.Request.Context(), booking.PublicBookingInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Note:     req.Note,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": ap.ID})
}
