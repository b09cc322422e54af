package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramClient posts messages to a fixed chat via the Telegram Bot API.
type TelegramClient struct {
	BotToken string
	ChatID   string
	HTTP     *http.Client
}

// NewTelegramClient constructs a Telegram client. Empty token or chat ID
// leaves the client unconfigured; sends then fail with an explicit error.
func NewTelegramClient(botToken, chatID string) *TelegramClient {
	return &TelegramClient{
		BotToken: botToken,
		ChatID:   chatID,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *TelegramClient) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// SendMessage delivers one HTML-formatted message to the configured chat.
func (t *TelegramClient) SendMessage(ctx context.Context, text string) error {
	if !t.Configured() {
		return fmt.Errorf("telegram is not configured")
	}

	body, err := json.Marshal(map[string]string{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram API error: %d - %s", resp.StatusCode, string(detail))
	}
	return nil
}
