package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/extractor"
	"butler-assistant/internal/model"
	"butler-assistant/internal/notification"
	"butler-assistant/internal/record"
	"butler-assistant/internal/router"
	"butler-assistant/pkg/datemath"
	"butler-assistant/pkg/gcalendar"
	"butler-assistant/pkg/llmprovider"
	"butler-assistant/pkg/log"
)

// Wednesday 2024-05-01 10:00 UTC.
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fakeRecords struct {
	nextID       int64
	tasks        []model.Task
	appointments []model.Appointment
	meetings     []model.Meeting
	agenda       record.Agenda
	err          error
}

func (f *fakeRecords) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRecords) CreateTask(ctx context.Context, in record.CreateTaskInput) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	t := model.Task{ID: f.id(), Description: in.Description, DueDate: in.DueDate, Priority: in.Priority, Created: fixedNow}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeRecords) CreateAppointment(ctx context.Context, in record.CreateAppointmentInput) (model.Appointment, error) {
	if f.err != nil {
		return model.Appointment{}, f.err
	}
	a := model.Appointment{ID: f.id(), Date: in.Date, Time: in.Time, Description: in.Description, Created: fixedNow}
	f.appointments = append(f.appointments, a)
	return a, nil
}

func (f *fakeRecords) CreateMeeting(ctx context.Context, in record.CreateMeetingInput) (model.Meeting, error) {
	if f.err != nil {
		return model.Meeting{}, f.err
	}
	m := model.Meeting{
		ID: f.id(), Title: in.Title, Date: in.Date, StartTime: in.StartTime, EndTime: in.EndTime,
		Location: in.Location, Attendees: in.Attendees, Description: in.Description, CreatedAt: fixedNow,
	}
	f.meetings = append(f.meetings, m)
	return m, nil
}

func (f *fakeRecords) GetMeeting(ctx context.Context, id int64) (model.Meeting, error) {
	for _, m := range f.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Meeting{}, record.ErrMeetingNotFound
}

func (f *fakeRecords) ListTasks(ctx context.Context) []model.Task               { return f.tasks }
func (f *fakeRecords) ListAppointments(ctx context.Context) []model.Appointment { return f.appointments }
func (f *fakeRecords) ListMeetings(ctx context.Context) []model.Meeting         { return f.meetings }
func (f *fakeRecords) ListToday(ctx context.Context, now time.Time) record.Agenda {
	return f.agenda
}

type fakeNotifier struct {
	mu        sync.Mutex
	enqueued  []notification.Item
	scheduled map[notification.Handle]time.Time
	seq       int
}

func (f *fakeNotifier) Enqueue(item notification.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, item)
}

func (f *fakeNotifier) ScheduleAt(item notification.Item, at time.Time) (notification.Handle, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !at.After(fixedNow) {
		f.enqueued = append(f.enqueued, item)
		return "", false
	}
	f.seq++
	h := notification.Handle(fmt.Sprintf("h%d", f.seq))
	if f.scheduled == nil {
		f.scheduled = map[notification.Handle]time.Time{}
	}
	f.scheduled[h] = at
	return h, true
}

func (f *fakeNotifier) Cancel(h notification.Handle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scheduled[h]; !ok {
		return false
	}
	delete(f.scheduled, h)
	return true
}

type fakeCalendar struct {
	reqs []gcalendar.CreateEventRequest
	err  error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary, HtmlLink: "https://calendar.example/evt-1"}, nil
}

type fakeLLM struct {
	text string
	err  error
	reqs []*llmprovider.Request
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: "fake"}, nil
}

type fixture struct {
	uc       *implUseCase
	records  *fakeRecords
	notifier *fakeNotifier
	calendar *fakeCalendar
	llm      *fakeLLM
}

type fixtureOption func(*fixture)

func withoutCalendar() fixtureOption { return func(f *fixture) { f.calendar = nil } }
func withoutLLM() fixtureOption      { return func(f *fixture) { f.llm = nil } }

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	f := &fixture{
		records:  &fakeRecords{},
		notifier: &fakeNotifier{},
		calendar: &fakeCalendar{},
		llm:      &fakeLLM{},
	}
	for _, opt := range opts {
		opt(f)
	}

	// Keep nil interfaces nil rather than typed-nil pointers.
	var cal assistant.Calendar
	if f.calendar != nil {
		cal = f.calendar
	}
	var llm assistant.LLM
	if f.llm != nil {
		llm = f.llm
	}

	l := log.NewNop()
	f.uc = New(l, router.New(l), extractor.New(dates), f.records, f.notifier, cal, llm, dates, Config{CalendarID: "primary"})
	f.uc.now = func() time.Time { return fixedNow }
	return f
}
