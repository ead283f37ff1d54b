package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/notification/sink"
	pkgResponse "butler-assistant/pkg/response"
	pkgTelegram "butler-assistant/pkg/telegram"
)

// HandleWebhook answers Telegram with 200 at once and processes the update
// in the background, detached from the request context.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.BadRequest(c, err)
		return
	}

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		h.background(func(ctx context.Context) error { return h.processCallback(ctx, cb) })
	case update.Message != nil && update.Message.Chat != nil:
		msg := update.Message
		h.background(func(ctx context.Context) error { return h.processMessage(ctx, msg) })
	default:
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) background(fn func(ctx context.Context) error) {
	go func() {
		if h.done != nil {
			defer h.done()
		}
		ctx := context.Background()
		if err := fn(ctx); err != nil {
			h.l.Errorf(ctx, "telegram handler: background update failed: %v", err)
		}
	}()
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	switch strings.ToLower(strings.Fields(text)[0]) {
	case cmdStart:
		return h.send(ctx, chatID, msgStart)
	case cmdHelp:
		return h.send(ctx, chatID, msgHelp)
	case cmdToday:
		return h.send(ctx, chatID, h.uc.Itinerary(ctx).Content)
	}

	reply, err := h.uc.HandleCommand(ctx, assistant.CommandInput{Command: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: HandleCommand failed: %v", err)
		return h.send(ctx, chatID, assistant.ErrorReply(err).Content)
	}

	content := reply.Content
	if reply.CalendarLink != "" {
		content += "\n\n[Open in Google Calendar](" + reply.CalendarLink + ")"
	}
	return h.send(ctx, chatID, content)
}

// processCallback handles a press on a notification button.
func (h *handler) processCallback(ctx context.Context, cb *pkgTelegram.CallbackQuery) error {
	action, ok := strings.CutPrefix(cb.Data, sink.CallbackPrefix)
	if !ok {
		return h.bot.AnswerCallbackQuery(ctx, cb.ID, "")
	}
	h.l.Info(ctx, "notification acknowledged", "action", action, "callback_id", cb.ID)

	switch action {
	case actionDismiss:
		return h.bot.AnswerCallbackQuery(ctx, cb.ID, msgDismissed)
	case actionView:
		if err := h.bot.AnswerCallbackQuery(ctx, cb.ID, ""); err != nil {
			return err
		}
		if cb.Message == nil || cb.Message.Chat == nil {
			return nil
		}
		return h.send(ctx, cb.Message.Chat.ID, h.uc.Itinerary(ctx).Content)
	}
	return h.bot.AnswerCallbackQuery(ctx, cb.ID, msgNoted)
}

func (h *handler) send(ctx context.Context, chatID int64, text string) error {
	return h.bot.SendMessageWithMode(ctx, chatID, text, pkgTelegram.ParseModeMarkdown)
}
