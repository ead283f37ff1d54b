package sink

import (
	"context"
	"fmt"
	"strings"

	"butler-assistant/internal/notification"
	"butler-assistant/pkg/telegram"
)

// CallbackPrefix marks inline-button data produced by TelegramSink.
const CallbackPrefix = "ack:"

type messageSender interface {
	Send(ctx context.Context, msg telegram.SendMessageRequest) error
}

// TelegramSink sends notifications to one chat with the actions as inline
// buttons. Button presses arrive later through the webhook, so Deliver
// returns an empty acknowledgement.
type TelegramSink struct {
	bot    messageSender
	chatID int64
}

var _ notification.Sink = (*TelegramSink)(nil)

func NewTelegramSink(bot messageSender, chatID int64) *TelegramSink {
	return &TelegramSink{bot: bot, chatID: chatID}
}

func (s *TelegramSink) Deliver(ctx context.Context, p notification.Payload) (notification.Acknowledgement, error) {
	buttons := make([]telegram.InlineKeyboardButton, 0, len(p.Actions))
	for _, a := range p.Actions {
		buttons = append(buttons, telegram.InlineKeyboardButton{Text: a, CallbackData: CallbackPrefix + a})
	}

	msg := telegram.SendMessageRequest{
		ChatID:              s.chatID,
		Text:                fmt.Sprintf("*%s*\n%s", escapeMarkdown(p.Title), escapeMarkdown(p.Message)),
		ParseMode:           telegram.ParseModeMarkdown,
		DisableNotification: !p.Sound,
	}
	if len(buttons) > 0 {
		msg.ReplyMarkup = &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{buttons}}
	}

	if err := s.bot.Send(ctx, msg); err != nil {
		return notification.Acknowledgement{}, err
	}
	return notification.Acknowledgement{}, nil
}

var markdownEscaper = strings.NewReplacer("*", "\\*", "_", "\\_", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
