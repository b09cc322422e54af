package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"clinicbook/models"
)

// QueueNotificationService enqueues messages for background delivery; the
// worker in worker/ drains the queue and talks to Telegram. Booking requests
// never wait on the Telegram API.
type QueueNotificationService struct {
	Client   *asynq.Client
	Telegram *TelegramClient
}

func NewQueueNotificationService(client *asynq.Client, tg *TelegramClient) *QueueNotificationService {
	return &QueueNotificationService{Client: client, Telegram: tg}
}

func (s *QueueNotificationService) Configured() bool {
	return s.Telegram.Configured()
}

func (s *QueueNotificationService) NotifyBookingCreated(ctx context.Context, ap models.Appointment) error {
	return s.SendText(ctx, FormatBookingMessage(ap))
}

func (s *QueueNotificationService) SendText(ctx context.Context, text string) error {
	if !s.Configured() {
		return fmt.Errorf("telegram is not configured")
	}
	task, err := NewTelegramTask(models.TelegramPayload{Text: text})
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue telegram task: %w", err)
	}
	return nil
}
