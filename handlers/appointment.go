package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinicbook/services/booking"
	"clinicbook/utils"
)

// AppointmentHandler serves the admin appointment CRUD endpoints. The
// create and update paths run through the booking guard, so the no-overlap
// invariant holds for admin writes too.
type AppointmentHandler struct {
	Booking booking.Service
}

func NewAppointmentHandler(book booking.Service) *AppointmentHandler {
	return &AppointmentHandler{Booking: book}
}

type appointmentRequest struct {
	FullName string    `json:"fullName"`
	Phone    string    `json:"phone"`
	Note     string    `json:"note"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	Status   string    `json:"status"`
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.Booking.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "invalid request body")
		return
	}

	ap, err := h.Booking.CreateAdmin(c.Request.Context(), booking.AdminAppointmentInput{
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
	c.JSON(http.StatusCreated, ap)
}

// Update handles PUT /api/appointments/:id.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "invalid request body")
		return
	}

	ap, err := h.Booking.Update(c.Request.Context(), id, booking.AdminAppointmentInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Note:     req.Note,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Status:   req.Status,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ap)
}

// Delete handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.Booking.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
