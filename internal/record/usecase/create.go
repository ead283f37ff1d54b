package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record"
)

// CreateTask appends a task. The record is persisted before it becomes
// visible in memory, so a failed write leaves the store unchanged.
func (uc *implUseCase) CreateTask(ctx context.Context, input record.CreateTaskInput) (model.Task, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return model.Task{}, record.ErrEmptyDescription
	}

	priority := model.Priority(strings.ToLower(string(input.Priority)))
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, fmt.Errorf("%w: %q", record.ErrInvalidPriority, input.Priority)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	task := model.Task{
		ID:          uc.nextID(now),
		Description: description,
		DueDate:     strings.TrimSpace(input.DueDate),
		Priority:    priority,
		Created:     now,
	}

	if err := uc.repo.InsertTask(ctx, task); err != nil {
		uc.l.Errorf(ctx, "%s: insert task %d: %v", logPrefixCreateTask, task.ID, err)
		return model.Task{}, fmt.Errorf("%w: %w", record.ErrPersist, err)
	}
	uc.tasks = append(uc.tasks, task)

	uc.l.Infof(ctx, "%s: created task %d (%s)", logPrefixCreateTask, task.ID, task.Priority)
	return task, nil
}

// CreateAppointment appends an appointment.
func (uc *implUseCase) CreateAppointment(ctx context.Context, input record.CreateAppointmentInput) (model.Appointment, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return model.Appointment{}, record.ErrEmptyDescription
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	appointment := model.Appointment{
		ID:          uc.nextID(now),
		Date:        strings.TrimSpace(input.Date),
		Time:        strings.TrimSpace(input.Time),
		Description: description,
		Created:     now,
	}

	if err := uc.repo.InsertAppointment(ctx, appointment); err != nil {
		uc.l.Errorf(ctx, "%s: insert appointment %d: %v", logPrefixCreateAppointment, appointment.ID, err)
		return model.Appointment{}, fmt.Errorf("%w: %w", record.ErrPersist, err)
	}
	uc.appointments = append(uc.appointments, appointment)

	uc.l.Infof(ctx, "%s: created appointment %d on %s", logPrefixCreateAppointment, appointment.ID, appointment.Date)
	return appointment, nil
}

// CreateMeeting appends a meeting.
func (uc *implUseCase) CreateMeeting(ctx context.Context, input record.CreateMeetingInput) (model.Meeting, error) {
	attendees := slices.Clone(input.Attendees)
	if attendees == nil {
		attendees = []string{}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	meeting := model.Meeting{
		ID:          uc.nextID(now),
		Title:       input.Title,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Attendees:   attendees,
		Description: input.Description,
		CreatedAt:   now,
	}

	if err := uc.repo.InsertMeeting(ctx, meeting); err != nil {
		uc.l.Errorf(ctx, "%s: insert meeting %d: %v", logPrefixCreateMeeting, meeting.ID, err)
		return model.Meeting{}, fmt.Errorf("%w: %w", record.ErrPersist, err)
	}
	uc.meetings = append(uc.meetings, meeting)

	uc.l.Infof(ctx, "%s: created meeting %d %q", logPrefixCreateMeeting, meeting.ID, meeting.Title)
	return meeting, nil
}
