package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"butler-assistant/pkg/response"
)

// TelegramSecretHeader carries the secret registered with setWebhook.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls without the configured secret token.
// With no secret configured every call passes.
func (mw Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(mw.telegramSecret)) != 1 {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.TelegramSecret: bad secret from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
