package record

import (
	"context"
	"time"

	"butler-assistant/internal/model"
)

// UseCase is the single writer of task, appointment and meeting records.
// Creation is append-only; records are never edited or deleted here.
type UseCase interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (model.Task, error)
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (model.Appointment, error)
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (model.Meeting, error)

	GetMeeting(ctx context.Context, id int64) (model.Meeting, error)
	ListTasks(ctx context.Context) []model.Task
	ListAppointments(ctx context.Context) []model.Appointment
	ListMeetings(ctx context.Context) []model.Meeting

	// ListToday returns the agenda for now's calendar day.
	ListToday(ctx context.Context, now time.Time) Agenda
}
