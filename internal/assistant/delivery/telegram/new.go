package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"butler-assistant/internal/assistant"
	pkgLog "butler-assistant/pkg/log"
)

// Handler is the Telegram webhook entry point.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Bot is the part of the Telegram client the handler replies through.
type Bot interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
	AnswerCallbackQuery(ctx context.Context, callbackID, text string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot Bot

	// done, when set, is called after each background update finishes.
	done func()
}

func New(l pkgLog.Logger, uc assistant.UseCase, bot Bot) Handler {
	return &handler{l: l, uc: uc, bot: bot}
}
