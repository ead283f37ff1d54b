package http

import (
	"time"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/intent"
	"butler-assistant/internal/notification"
	"butler-assistant/internal/record"
)

type commandReq struct {
	Command string `json:"command" binding:"required"`
	Details string `json:"details"`
}

func (r commandReq) toInput() assistant.CommandInput {
	return assistant.CommandInput{Command: r.Command, Details: r.Details}
}

type conversationReq struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
}

func (r conversationReq) toInput() assistant.ConversationInput {
	return assistant.ConversationInput{SessionID: r.SessionID, Message: r.Message}
}

type parseReq struct {
	Text string `json:"text" binding:"required"`
}

type reminderReq struct {
	Message   string     `json:"message" binding:"required"`
	At        *time.Time `json:"at"`
	BypassDND bool       `json:"bypassDnd"`
}

func (r reminderReq) toInput() assistant.ReminderInput {
	in := assistant.ReminderInput{Message: r.Message, BypassDND: r.BypassDND}
	if r.At != nil {
		in.At = *r.At
	}
	return in
}

// --- Response DTOs ---

type parseResp struct {
	Result intent.Result `json:"result"`
}

type agendaResp struct {
	Agenda    record.Agenda `json:"agenda"`
	Itinerary string        `json:"itinerary"`
}

type reminderResp struct {
	Handle   notification.Handle `json:"handle,omitempty"`
	Deferred bool                `json:"deferred"`
	At       time.Time           `json:"at"`
}

func newReminderResp(out assistant.ReminderOutput) reminderResp {
	return reminderResp{Handle: out.Handle, Deferred: out.Deferred, At: out.At}
}
