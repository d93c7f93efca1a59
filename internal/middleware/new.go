package middleware

import (
	"grocery-assistant/pkg/log"
)

// Config tunes the middlewares.
type Config struct {
	// RequestsPerMin is the per-client budget. Zero disables rate limiting.
	RequestsPerMin int

	// TelegramSecret is compared against X-Telegram-Bot-Api-Secret-Token.
	// Empty disables the check.
	TelegramSecret string
}

// Middleware bundles the gin middlewares shared by the HTTP routes.
type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	telegramSecret string
}

// New creates the middleware set.
func New(l log.Logger, cfg Config) Middleware {
	var rl *rateLimiter
	if cfg.RequestsPerMin > 0 {
		rl = newRateLimiter(cfg.RequestsPerMin)
	}
	return Middleware{
		l:              l,
		limiter:        rl,
		telegramSecret: cfg.TelegramSecret,
	}
}
