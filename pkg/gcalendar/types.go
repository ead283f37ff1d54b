package gcalendar

import "time"

// Reminder is a per-event reminder override.
type Reminder struct {
	Method  string // "popup" or "email"
	Minutes int64
}

// DefaultReminders are applied when a request carries none.
var DefaultReminders = []Reminder{
	{Method: ReminderPopup, Minutes: 30},
	{Method: ReminderEmail, Minutes: 60},
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/London"
	Reminders   []Reminder
}

// Event is the part of a created Google Calendar event the assistant keeps.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}
