package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org/bot"
	defaultTimeout = 15 * time.Second

	ParseModeMarkdown = "Markdown"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     defaultAPIBase + token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. When secretToken is
// set Telegram echoes it in the X-Telegram-Bot-Api-Secret-Token header.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	req := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: []string{"message", "callback_query"},
	}
	if err := b.call(ctx, "setWebhook", req); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	return b.Send(ctx, SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
}

// Send sends a fully specified message, including any inline keyboard.
func (b *Bot) Send(ctx context.Context, msg SendMessageRequest) error {
	if err := b.call(ctx, "sendMessage", msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// AnswerCallbackQuery acknowledges an inline button press.
func (b *Bot) AnswerCallbackQuery(ctx context.Context, callbackID, text string) error {
	req := AnswerCallbackQueryRequest{CallbackQueryID: callbackID, Text: text}
	if err := b.call(ctx, "answerCallbackQuery", req); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}
	return nil
}

// call posts payload to the named Bot API method and checks the ok flag.
func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed: %s", method, apiResp.Description)
	}
	return nil
}
