package jsonfile

import (
	"context"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record/repository"
)

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	return readCollection[model.Task](r.path(repository.CollectionTasks))
}

func (r *implRepository) InsertTask(ctx context.Context, task model.Task) error {
	return appendRecord(r.path(repository.CollectionTasks), task)
}

func (r *implRepository) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return readCollection[model.Appointment](r.path(repository.CollectionAppointments))
}

func (r *implRepository) InsertAppointment(ctx context.Context, appointment model.Appointment) error {
	return appendRecord(r.path(repository.CollectionAppointments), appointment)
}

func (r *implRepository) ListMeetings(ctx context.Context) ([]model.Meeting, error) {
	return readCollection[model.Meeting](r.path(repository.CollectionMeetings))
}

func (r *implRepository) InsertMeeting(ctx context.Context, meeting model.Meeting) error {
	return appendRecord(r.path(repository.CollectionMeetings), meeting)
}
