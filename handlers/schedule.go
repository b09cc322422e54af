package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"
)

// ScheduleHandler serves the admin schedule endpoints.
type ScheduleHandler struct {
	Schedule schedule.Service
}

func NewScheduleHandler(sched schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Schedule: sched}
}

// Get handles GET /api/schedule. An unconfigured deployment returns the
// explicit empty schedule, not an error.
func (h *ScheduleHandler) Get(c *gin.Context) {
	sched, err := h.Schedule.Current(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// Put handles PUT /api/schedule, replacing the whole document.
func (h *ScheduleHandler) Put(c *gin.Context) {
	var req models.Schedule
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "invalid request body")
		return
	}

	replaced, err := h.Schedule.Upsert(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replaced)
}
