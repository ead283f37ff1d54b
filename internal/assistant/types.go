package assistant

import (
	"time"

	"butler-assistant/internal/model"
	"butler-assistant/internal/notification"
	"butler-assistant/internal/router"
)

// ReplyType tells clients how to render a Reply.
type ReplyType string

const (
	ReplyMeeting    ReplyType = "meeting"
	ReplyTask       ReplyType = "task"
	ReplyScheduling ReplyType = "scheduling"
	ReplyItinerary  ReplyType = "itinerary"
	ReplyText       ReplyType = "text"
	ReplyError      ReplyType = "error"
)

type CommandInput struct {
	Command string `json:"command" binding:"required"`
	Details string `json:"details"`
}

type ConversationInput struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required"`
}

// Reply is what the user sees. Content is Markdown; the record fields are
// set when the reply created one.
type Reply struct {
	Type         ReplyType          `json:"type"`
	Route        router.Route       `json:"route,omitempty"`
	Content      string             `json:"content"`
	Task         *model.Task        `json:"task,omitempty"`
	Appointment  *model.Appointment `json:"appointment,omitempty"`
	Meeting      *model.Meeting     `json:"meeting,omitempty"`
	CalendarLink string             `json:"calendarLink,omitempty"`
}

// ReminderInput schedules a free-form reminder. A zero At delivers now.
type ReminderInput struct {
	Message   string    `json:"message" binding:"required"`
	At        time.Time `json:"at"`
	BypassDND bool      `json:"bypassDnd"`
}

// ReminderOutput reports how a reminder was queued. Handle is empty when the
// reminder went straight to the delivery queue.
type ReminderOutput struct {
	Handle   notification.Handle `json:"handle,omitempty"`
	Deferred bool                `json:"deferred"`
	At       time.Time           `json:"at"`
}
