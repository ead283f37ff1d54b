package sqlite

import (
	"context"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record/repository"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	return listCollection[model.Task](ctx, r.db, repository.CollectionTasks)
}

func (r *implRepository) InsertTask(ctx context.Context, task model.Task) error {
	return insertRecord(ctx, r.db, repository.CollectionTasks, task.ID, task)
}

func (r *implRepository) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return listCollection[model.Appointment](ctx, r.db, repository.CollectionAppointments)
}

func (r *implRepository) InsertAppointment(ctx context.Context, appointment model.Appointment) error {
	return insertRecord(ctx, r.db, repository.CollectionAppointments, appointment.ID, appointment)
}

func (r *implRepository) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	return listCollection[model.Meeting](ctx, r.db, repository.CollectionMeetings)
}

func (r *implRepository) InsertMeeting(ctx context.Context, meeting model.Meeting) error {
	return insertRecord(ctx, r.db, repository.CollectionMeetings, meeting.ID, meeting)
}
