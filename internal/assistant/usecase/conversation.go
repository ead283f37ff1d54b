package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/intent"
	"butler-assistant/pkg/datemath"
	"butler-assistant/pkg/llmprovider"
)

type conversationContext struct {
	CurrentDate  string `json:"currentDate"`
	Timezone     string `json:"timezone"`
	UserName     string `json:"userName"`
	Appointments any    `json:"todaysAppointments"`
	Tasks        any    `json:"todaysTasks"`
}

func (uc *implUseCase) HandleConversation(ctx context.Context, input assistant.ConversationInput) (assistant.Reply, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.Reply{}, assistant.ErrEmptyMessage
	}
	session := input.SessionID
	if session == "" {
		session = defaultSessionID
	}

	history := uc.appendHistory(session, llmprovider.Message{Role: llmprovider.RoleUser, Content: message})
	if uc.llm == nil {
		uc.l.Warnf(ctx, "%s: no language model configured", logPrefixConversation)
		return assistant.Reply{Type: assistant.ReplyError, Content: msgLLMUnavailable}, nil
	}

	now := uc.now()
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		System:      uc.systemPrompt(ctx, now),
		Messages:    history,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: session %s: %v", logPrefixConversation, session, err)
		return assistant.Reply{Type: assistant.ReplyError, Content: msgLLMUnavailable}, nil
	}
	uc.appendHistory(session, llmprovider.Message{Role: llmprovider.RoleAssistant, Content: resp.Text})

	parsed := intent.Parse(resp.Text)
	uc.l.Info(ctx, "conversation reply parsed",
		"session", session, "provider", resp.ProviderName, "action", parsed.Action)

	switch parsed.Action {
	case intent.ActionCreateAppointment:
		return uc.ScheduleAppointment(ctx, message)
	case intent.ActionCreateTask:
		return uc.AddTask(ctx, message)
	case intent.ActionCreateItinerary:
		return uc.Itinerary(ctx), nil
	}

	return assistant.Reply{Type: assistant.ReplyText, Content: resp.Text}, nil
}

func (uc *implUseCase) ResetConversation(ctx context.Context, sessionID string) {
	session := strings.TrimSpace(sessionID)
	if session == "" {
		session = defaultSessionID
	}

	uc.mu.Lock()
	delete(uc.history, session)
	uc.mu.Unlock()

	uc.l.Infof(ctx, "%s: cleared session %s", logPrefixConversation, session)
}

// appendHistory records msg and returns the session's most recent messages.
func (uc *implUseCase) appendHistory(session string, msg llmprovider.Message) []llmprovider.Message {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	h := append(uc.history[session], msg)
	if len(h) > maxHistory {
		h = h[len(h)-maxHistory:]
	}
	uc.history[session] = h

	out := make([]llmprovider.Message, len(h))
	copy(out, h)
	return out
}

func (uc *implUseCase) systemPrompt(ctx context.Context, now time.Time) string {
	agenda := uc.records.ListToday(ctx, now)
	data, err := json.Marshal(conversationContext{
		CurrentDate:  now.In(uc.dates.Location()).Format(datemath.DateLayout),
		Timezone:     uc.dates.Location().String(),
		UserName:     uc.cfg.UserName,
		Appointments: agenda.Appointments,
		Tasks:        agenda.Tasks,
	})
	if err != nil {
		data = []byte("{}")
	}

	return fmt.Sprintf(personaPrompt, uc.cfg.UserName) + "\n\nCurrent contextual data: " + string(data)
}
