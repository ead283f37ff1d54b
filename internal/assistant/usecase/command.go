package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/extractor"
	"butler-assistant/internal/record"
	"butler-assistant/internal/router"
)

func (uc *implUseCase) HandleCommand(ctx context.Context, input assistant.CommandInput) (assistant.Reply, error) {
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return assistant.Reply{}, assistant.ErrEmptyCommand
	}

	route := uc.router.Classify(ctx, command)
	uc.l.Info(ctx, "assistant command routed", "route", route.Route, "keyword", route.Keyword)

	var (
		reply assistant.Reply
		err   error
	)
	switch route.Route {
	case router.RouteMeeting:
		reply, err = uc.ScheduleMeeting(ctx, assistant.CommandInput{Command: command, Details: input.Details})
	case router.RouteTask:
		reply, err = uc.AddTask(ctx, command)
	case router.RouteScheduling:
		reply, err = uc.ScheduleAppointment(ctx, command)
	case router.RouteItinerary:
		reply = uc.Itinerary(ctx)
	default:
		reply, err = uc.HandleConversation(ctx, assistant.ConversationInput{Message: command})
	}
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s: %v", logPrefixCommand, route.Route, err)
		return assistant.Reply{}, err
	}

	reply.Route = route.Route
	return reply, nil
}

func (uc *implUseCase) ScheduleMeeting(ctx context.Context, input assistant.CommandInput) (assistant.Reply, error) {
	if strings.TrimSpace(input.Command) == "" {
		return assistant.Reply{}, assistant.ErrEmptyCommand
	}
	req := uc.extractor.ExtractMeeting(input.Command, input.Details, uc.now())

	m, err := uc.records.CreateMeeting(ctx, record.CreateMeetingInput{
		Title:       req.Title,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Attendees:   req.Attendees,
		Description: req.Description,
	})
	if err != nil {
		return assistant.Reply{}, err
	}

	link, synced := uc.syncMeeting(ctx, m)
	return assistant.Reply{
		Type:         assistant.ReplyMeeting,
		Content:      meetingMarkdown(m, synced),
		Meeting:      &m,
		CalendarLink: link,
	}, nil
}

func (uc *implUseCase) AddTask(ctx context.Context, command string) (assistant.Reply, error) {
	if strings.TrimSpace(command) == "" {
		return assistant.Reply{}, assistant.ErrEmptyCommand
	}
	req, err := uc.extractor.ExtractTask(command, uc.now())
	if errors.Is(err, extractor.ErrEmptyDescription) {
		return assistant.Reply{Type: assistant.ReplyError, Content: msgTaskUnclear}, nil
	}
	if err != nil {
		return assistant.Reply{}, err
	}

	task, err := uc.records.CreateTask(ctx, record.CreateTaskInput{
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if err != nil {
		return assistant.Reply{}, err
	}

	due := task.DueDate
	if due == "" {
		due = "no specific date"
	}
	return assistant.Reply{
		Type: assistant.ReplyTask,
		Content: fmt.Sprintf(`Certainly, %s. I've added "%s" to your task list due on %s with %s priority.`,
			uc.cfg.UserName, task.Description, due, task.Priority),
		Task: &task,
	}, nil
}

func (uc *implUseCase) ScheduleAppointment(ctx context.Context, command string) (assistant.Reply, error) {
	if strings.TrimSpace(command) == "" {
		return assistant.Reply{}, assistant.ErrEmptyCommand
	}
	now := uc.now()
	req, err := uc.extractor.ExtractSchedulingRequest(command, now)
	if errors.Is(err, extractor.ErrEmptyDescription) {
		return assistant.Reply{Type: assistant.ReplyError, Content: msgSchedulingUnclear}, nil
	}
	if err != nil {
		return assistant.Reply{}, err
	}

	appt, err := uc.records.CreateAppointment(ctx, record.CreateAppointmentInput{
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
	})
	if err != nil {
		return assistant.Reply{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Very good, %s. I've scheduled "%s" for %s`, uc.cfg.UserName, appt.Description, appt.Date)
	if appt.Time != "" {
		fmt.Fprintf(&b, " at %s", appt.Time)
	}
	b.WriteString(".")

	link, synced := uc.syncAppointment(ctx, appt, now)
	if synced {
		b.WriteString(msgCalendarAdded)
	}

	return assistant.Reply{
		Type:         assistant.ReplyScheduling,
		Content:      b.String(),
		Appointment:  &appt,
		CalendarLink: link,
	}, nil
}
