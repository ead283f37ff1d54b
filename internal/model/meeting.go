package model

import "time"

// Meeting is a persisted meeting with a start and end time.
type Meeting struct {
	ID          int64     `json:"id,string"`   // Unix-millisecond identity, stored as a string
	Title       string    `json:"title"`       // Defaults to "Untitled Meeting"
	Date        string    `json:"date"`        // ISO calendar date
	StartTime   string    `json:"startTime"`   // HH:MM
	EndTime     string    `json:"endTime"`     // HH:MM
	Location    string    `json:"location"`    // Free text, may be empty
	Attendees   []string  `json:"attendees"`   // Ordered attendee names
	Description string    `json:"description"` // Agenda text, may be empty
	CreatedAt   time.Time `json:"createdAt"`
}

// Appointment is a persisted calendar entry with an optional time.
type Appointment struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // ISO date when resolvable, raw token otherwise
	Time        string    `json:"time"` // HH:MM when resolvable, raw token or empty otherwise
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// AgendaEntry is one timed item on a day's agenda, built from either an
// appointment or a meeting.
type AgendaEntry struct {
	Kind        string `json:"kind"` // "appointment" or "meeting"
	ID          int64  `json:"id"`
	Time        string `json:"time"`
	EndTime     string `json:"endTime,omitempty"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

const (
	AgendaKindAppointment = "appointment"
	AgendaKindMeeting     = "meeting"
)
