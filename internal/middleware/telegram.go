package middleware

import (
	"crypto/hmac"

	"github.com/gin-gonic/gin"

	"grocery-assistant/pkg/response"
)

// HeaderTelegramSecret is set by Telegram when the webhook was registered with a secret_token.
const HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls whose secret token does not match.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderTelegramSecret)
		if !hmac.Equal([]byte(got), []byte(m.telegramSecret)) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.TelegramSecret: invalid secret token from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
