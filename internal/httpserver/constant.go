package httpserver

import "time"

const (
	APIPrefix           = "/api/v1"
	TelegramWebhookPath = "/webhook/telegram"

	DefaultShutdownTimeout = 10 * time.Second
)
