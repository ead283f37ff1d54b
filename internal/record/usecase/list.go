package usecase

import (
	"cmp"
	"context"
	"slices"
	"time"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record"
	"butler-assistant/pkg/datemath"
)

func (uc *implUseCase) GetMeeting(ctx context.Context, id int64) (model.Meeting, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, m := range uc.meetings {
		if m.ID == id {
			m.Attendees = slices.Clone(m.Attendees)
			return m, nil
		}
	}
	return model.Meeting{}, record.ErrMeetingNotFound
}

func (uc *implUseCase) ListTasks(ctx context.Context) []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.tasks)
}

func (uc *implUseCase) ListAppointments(ctx context.Context) []model.Appointment {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.appointments)
}

func (uc *implUseCase) ListMeetings(ctx context.Context) []model.Meeting {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.Meeting, len(uc.meetings))
	for i, m := range uc.meetings {
		m.Attendees = slices.Clone(m.Attendees)
		out[i] = m
	}
	return out
}

// ListToday collects the records whose date resolves to now's day.
// Stored dates are ISO where they could be resolved at creation; any raw
// token left over is resolved against now.
func (uc *implUseCase) ListToday(ctx context.Context, now time.Time) record.Agenda {
	today := uc.dates.StartOfDay(now)
	isToday := func(date string) bool {
		if date == "" {
			return false
		}
		t, ok := uc.dates.ResolveDate(date, now)
		return ok && t.Equal(today)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	agenda := record.Agenda{
		Date:         today.Format(datemath.DateLayout),
		Appointments: []model.AgendaEntry{},
		Tasks:        []model.Task{},
	}

	for _, a := range uc.appointments {
		if isToday(a.Date) {
			agenda.Appointments = append(agenda.Appointments, model.AgendaEntry{
				Kind:        model.AgendaKindAppointment,
				ID:          a.ID,
				Time:        a.Time,
				Description: a.Description,
			})
		}
	}
	for _, m := range uc.meetings {
		if isToday(m.Date) {
			agenda.Appointments = append(agenda.Appointments, model.AgendaEntry{
				Kind:        model.AgendaKindMeeting,
				ID:          m.ID,
				Time:        m.StartTime,
				EndTime:     m.EndTime,
				Description: m.Title,
				Location:    m.Location,
			})
		}
	}
	for _, t := range uc.tasks {
		if isToday(t.DueDate) {
			agenda.Tasks = append(agenda.Tasks, t)
		}
	}

	slices.SortStableFunc(agenda.Appointments, compareEntries)
	slices.SortStableFunc(agenda.Tasks, func(a, b model.Task) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})

	return agenda
}

// compareEntries orders by start time; entries without a readable time sort last.
func compareEntries(a, b model.AgendaEntry) int {
	ta, okA := datemath.ResolveTime(a.Time)
	tb, okB := datemath.ResolveTime(b.Time)
	switch {
	case okA && okB:
		return cmp.Compare(ta.Minutes(), tb.Minutes())
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}
