package record

import "butler-assistant/internal/model"

// CreateTaskInput is the input for task creation. An empty priority means medium.
type CreateTaskInput struct {
	Description string
	DueDate     string
	Priority    model.Priority
}

// CreateAppointmentInput is the input for appointment creation.
type CreateAppointmentInput struct {
	Date        string
	Time        string
	Description string
}

// CreateMeetingInput is the input for meeting creation.
type CreateMeetingInput struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Attendees   []string
	Description string
}

// Agenda is one day's view of the records. Appointments holds both
// appointments and meetings ordered by start time, untimed entries last.
// Tasks are ordered high, medium, low.
type Agenda struct {
	Date         string              `json:"date"`
	Appointments []model.AgendaEntry `json:"appointments"`
	Tasks        []model.Task        `json:"tasks"`
}
