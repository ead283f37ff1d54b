package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/notification"
	"butler-assistant/pkg/datemath"
)

func (uc *implUseCase) ScheduleReminder(ctx context.Context, input assistant.ReminderInput) (assistant.ReminderOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ReminderOutput{}, assistant.ErrEmptyReminder
	}

	item := notification.ReminderItem(message)
	item.BypassDND = input.BypassDND

	if input.At.IsZero() {
		uc.notifier.Enqueue(item)
		uc.l.Infof(ctx, "%s: %q queued for delivery", logPrefixReminder, message)
		return assistant.ReminderOutput{At: uc.now()}, nil
	}

	h, deferred := uc.notifier.ScheduleAt(item, input.At)
	uc.l.Infof(ctx, "%s: %q at %s (deferred=%t)", logPrefixReminder, message, input.At.Format(time.RFC3339), deferred)
	return assistant.ReminderOutput{Handle: h, Deferred: deferred, At: input.At}, nil
}

func (uc *implUseCase) CancelReminder(ctx context.Context, handle notification.Handle) error {
	if !uc.notifier.Cancel(handle) {
		return assistant.ErrReminderNotFound
	}
	return nil
}

func (uc *implUseCase) SweepReminders(ctx context.Context) int {
	now := uc.now()
	sent := 0

	remind := func(key string, at time.Time, lead time.Duration, item notification.Item) {
		until := at.Sub(now)
		if until <= 0 || until > lead || uc.reminded.Contains(key) {
			return
		}
		uc.reminded.Add(key, struct{}{})
		uc.notifier.Enqueue(item)
		sent++
	}

	for _, t := range uc.records.ListTasks(ctx) {
		if t.Completed || t.DueDate == "" {
			continue
		}
		if due, ok := uc.dates.ResolveDate(t.DueDate, now); ok {
			remind(fmt.Sprintf("task:%d", t.ID), due, uc.cfg.TaskLead, notification.TaskItem(t))
		}
	}

	for _, a := range uc.records.ListAppointments(ctx) {
		date, ok := uc.dates.ResolveDate(a.Date, now)
		if !ok {
			continue
		}
		tod, ok := datemath.ResolveTime(a.Time)
		if !ok {
			continue
		}
		remind(fmt.Sprintf("appointment:%d", a.ID), tod.On(date), uc.cfg.AppointmentLead, notification.AppointmentItem(a))
	}

	for _, m := range uc.records.ListMeetings(ctx) {
		if start, _, ok := uc.meetingSpan(m); ok {
			remind(fmt.Sprintf("meeting:%d", m.ID), start, uc.cfg.AppointmentLead, notification.MeetingItem(m))
		}
	}

	if sent > 0 {
		uc.l.Infof(ctx, "%s: %d reminder(s) enqueued", logPrefixSweep, sent)
	}
	return sent
}
