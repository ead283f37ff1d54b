package assistant

import (
	"context"
	"time"

	"butler-assistant/internal/intent"
	"butler-assistant/internal/notification"
	"butler-assistant/internal/record"
	"butler-assistant/pkg/gcalendar"
	"butler-assistant/pkg/llmprovider"
)

// UseCase is the Butler command pipeline: it routes raw commands to the
// extractor and record store, talks to the language model, renders
// itineraries and feeds the notification scheduler.
type UseCase interface {
	// HandleCommand routes a raw command. Commands with no recognizable
	// trigger are handed to HandleConversation.
	HandleCommand(ctx context.Context, input CommandInput) (Reply, error)

	// ScheduleMeeting, AddTask and ScheduleAppointment skip routing and
	// treat the command as the named kind.
	ScheduleMeeting(ctx context.Context, input CommandInput) (Reply, error)
	AddTask(ctx context.Context, command string) (Reply, error)
	ScheduleAppointment(ctx context.Context, command string) (Reply, error)

	// HandleConversation sends the message to the language model with the
	// session's recent history and acts on any confirmation in the reply.
	HandleConversation(ctx context.Context, input ConversationInput) (Reply, error)
	// ResetConversation forgets a session's history. An empty id resets
	// the default session.
	ResetConversation(ctx context.Context, sessionID string)

	ParseReply(ctx context.Context, text string) intent.Result
	Itinerary(ctx context.Context) Reply
	Agenda(ctx context.Context) record.Agenda
	MeetingICS(ctx context.Context, id int64) ([]byte, error)

	ScheduleReminder(ctx context.Context, input ReminderInput) (ReminderOutput, error)
	CancelReminder(ctx context.Context, handle notification.Handle) error

	// SweepReminders enqueues reminders for tasks and appointments falling
	// due soon. Each record is reminded at most once; it returns the number
	// of items enqueued.
	SweepReminders(ctx context.Context) int
}

// Calendar receives a copy of every appointment and meeting.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// LLM generates conversational replies.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Notifier is the part of the notification scheduler the pipeline drives.
type Notifier interface {
	Enqueue(item notification.Item)
	ScheduleAt(item notification.Item, at time.Time) (notification.Handle, bool)
	Cancel(h notification.Handle) bool
}
