package models

// TelegramPayload is the queued notification task payload.
type TelegramPayload struct {
	Text string `json:"text"`
}
