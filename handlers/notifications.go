package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicbook/services/notification"
	"clinicbook/utils"
)

// NotificationHandler exposes the Telegram relay used by the front-end
// callback form.
type NotificationHandler struct {
	Notify notification.NotificationService
}

func NewNotificationHandler(notify notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notify: notify}
}

type telegramRequest struct {
	Text string `json:"text"`
}

// SendTelegram handles POST /api/notifications/telegram. The message is
// queued for background delivery.
func (h *NotificationHandler) SendTelegram(c *gin.Context) {
	if !h.Notify.Configured() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Telegram not configured"})
		return
	}

	var req telegramRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "text is required")
		return
	}

	if err := h.Notify.SendText(c.Request.Context(), req.Text); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
