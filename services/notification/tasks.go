package notification

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"clinicbook/models"
)

const TypeTelegramSend = "notify:telegram"

// NewTelegramTask builds the queued task carrying one Telegram message.
func NewTelegramTask(payload models.TelegramPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTelegramSend, b), nil
}
