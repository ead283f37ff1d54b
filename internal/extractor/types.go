package extractor

import "butler-assistant/internal/model"

// MeetingRequest holds the fields extracted from a meeting command.
// Identity and creation time are assigned by the record store.
type MeetingRequest struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`      // ISO date
	StartTime   string   `json:"startTime"` // HH:MM
	EndTime     string   `json:"endTime"`   // HH:MM
	Location    string   `json:"location"`
	Attendees   []string `json:"attendees"`
	Description string   `json:"description"`
}

// TaskRequest holds the fields extracted from a task command.
type TaskRequest struct {
	Description string         `json:"description"`
	DueDate     string         `json:"dueDate"` // ISO date, raw token, or empty
	Priority    model.Priority `json:"priority"`
}

// SchedulingRequest holds the fields extracted from a free-text scheduling command.
type SchedulingRequest struct {
	Description string `json:"description"`
	Date        string `json:"date"` // ISO date, or the raw token when unresolvable
	Time        string `json:"time"` // HH:MM, raw token, or empty
}

// fieldMatch is the value a rule found together with the span it consumed.
type fieldMatch struct {
	Value string
	Start int
	End   int
}
