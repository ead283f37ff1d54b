package repository

import (
	"context"

	"butler-assistant/internal/model"
)

// Collection names shared by the repository implementations.
const (
	CollectionTasks        = "tasks"
	CollectionAppointments = "appointments"
	CollectionMeetings     = "meetings"
)

// Repository persists the record collections. Insert appends one record;
// List returns records in insertion order.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	InsertTask(ctx context.Context, task model.Task) error

	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	InsertAppointment(ctx context.Context, appointment model.Appointment) error

	ListMeetings(ctx context.Context) ([]model.Meeting, error)
	InsertMeeting(ctx context.Context, meeting model.Meeting) error
}
