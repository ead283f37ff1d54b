package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record"
	"butler-assistant/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	tasks        []model.Task
	appointments []model.Appointment
	meetings     []model.Meeting
	fail         bool
}

var errWrite = errors.New("disk full")

func (m *mockRepo) ListTasks(ctx context.Context) ([]model.Task, error) { return m.tasks, nil }
func (m *mockRepo) InsertTask(ctx context.Context, t model.Task) error {
	if m.fail {
		return errWrite
	}
	m.tasks = append(m.tasks, t)
	return nil
}
func (m *mockRepo) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return m.appointments, nil
}
func (m *mockRepo) InsertAppointment(ctx context.Context, a model.Appointment) error {
	if m.fail {
		return errWrite
	}
	m.appointments = append(m.appointments, a)
	return nil
}
func (m *mockRepo) ListMeetings(ctx context.Context) ([]model.Meeting, error) { return m.meetings, nil }
func (m *mockRepo) InsertMeeting(ctx context.Context, mt model.Meeting) error {
	if m.fail {
		return errWrite
	}
	m.meetings = append(m.meetings, mt)
	return nil
}

// Wednesday 2024-05-01 10:00 UTC.
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *mockRepo) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	uc, err := New(context.Background(), &mockLogger{}, repo, parser)
	require.NoError(t, err)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestIDsAreMonotonic(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockRepo{})

	t1, err := uc.CreateTask(ctx, record.CreateTaskInput{Description: "one"})
	require.NoError(t, err)
	a, err := uc.CreateAppointment(ctx, record.CreateAppointmentInput{Description: "two", Date: "2024-05-01"})
	require.NoError(t, err)
	m, err := uc.CreateMeeting(ctx, record.CreateMeetingInput{Title: "three", Date: "2024-05-01"})
	require.NoError(t, err)

	assert.Equal(t, fixedNow.UnixMilli(), t1.ID)
	assert.Equal(t, t1.ID+1, a.ID)
	assert.Equal(t, a.ID+1, m.ID)
}

func TestIDsContinueAfterLoadedRecords(t *testing.T) {
	future := fixedNow.Add(time.Hour).UnixMilli()
	uc := newTestUseCase(t, &mockRepo{tasks: []model.Task{{ID: future}}})

	task, err := uc.CreateTask(context.Background(), record.CreateTaskInput{Description: "after"})
	require.NoError(t, err)
	assert.Equal(t, future+1, task.ID)
}

func TestCreateTaskValidation(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockRepo{})

	_, err := uc.CreateTask(ctx, record.CreateTaskInput{Description: "   "})
	assert.ErrorIs(t, err, record.ErrEmptyDescription)

	_, err = uc.CreateTask(ctx, record.CreateTaskInput{Description: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, record.ErrInvalidPriority)

	task, err := uc.CreateTask(ctx, record.CreateTaskInput{Description: "x", Priority: "HIGH"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.False(t, task.Completed)

	task, err = uc.CreateTask(ctx, record.CreateTaskInput{Description: "y"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, task.Priority)
}

func TestFailedWriteLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{fail: true}
	uc := newTestUseCase(t, repo)

	_, err := uc.CreateTask(ctx, record.CreateTaskInput{Description: "lost"})
	assert.ErrorIs(t, err, record.ErrPersist)
	assert.ErrorIs(t, err, errWrite)
	assert.Empty(t, uc.ListTasks(ctx))

	_, err = uc.CreateMeeting(ctx, record.CreateMeetingInput{Title: "lost"})
	assert.ErrorIs(t, err, record.ErrPersist)
}

func TestListToday(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{
		appointments: []model.Appointment{
			{ID: 1, Date: "2024-05-01", Time: "15:00", Description: "dentist"},
			{ID: 2, Date: "2024-05-01", Description: "call bank"},
			{ID: 3, Date: "2024-05-02", Time: "08:00", Description: "tomorrow"},
			{ID: 4, Date: "today", Time: "3pm", Description: "raw token"},
			{ID: 5, Date: "2024-05-01", Description: "pick up parcel"},
		},
		meetings: []model.Meeting{
			{ID: 6, Title: "standup", Date: "2024-05-01", StartTime: "09:30", EndTime: "09:45"},
		},
		tasks: []model.Task{
			{ID: 7, Description: "low", DueDate: "2024-05-01", Priority: model.PriorityLow},
			{ID: 8, Description: "undated", Priority: model.PriorityHigh},
			{ID: 9, Description: "high", DueDate: "2024-05-01", Priority: model.PriorityHigh},
			{ID: 10, Description: "medium", DueDate: "today", Priority: model.PriorityMedium},
			{ID: 11, Description: "other day", DueDate: "2024-04-30", Priority: model.PriorityHigh},
		},
	}
	uc := newTestUseCase(t, repo)

	agenda := uc.ListToday(ctx, fixedNow)

	assert.Equal(t, "2024-05-01", agenda.Date)

	var ids []int64
	for _, e := range agenda.Appointments {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{6, 1, 4, 2, 5}, ids)
	assert.Equal(t, model.AgendaKindMeeting, agenda.Appointments[0].Kind)
	assert.Equal(t, "09:45", agenda.Appointments[0].EndTime)

	var tasks []string
	for _, task := range agenda.Tasks {
		tasks = append(tasks, task.Description)
	}
	assert.Equal(t, []string{"high", "medium", "low"}, tasks)
}

func TestListTodayEmpty(t *testing.T) {
	agenda := newTestUseCase(t, &mockRepo{}).ListToday(context.Background(), fixedNow)
	assert.NotNil(t, agenda.Appointments)
	assert.NotNil(t, agenda.Tasks)
	assert.Empty(t, agenda.Appointments)
}

func TestGetMeeting(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockRepo{})

	created, err := uc.CreateMeeting(ctx, record.CreateMeetingInput{Title: "Budget", Attendees: []string{"Bob"}})
	require.NoError(t, err)

	got, err := uc.GetMeeting(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budget", got.Title)

	got.Attendees[0] = "mutated"
	again, _ := uc.GetMeeting(ctx, created.ID)
	assert.Equal(t, "Bob", again.Attendees[0])

	_, err = uc.GetMeeting(ctx, 42)
	assert.ErrorIs(t, err, record.ErrMeetingNotFound)
}

func TestListMeetingsReturnsCopies(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, &mockRepo{})

	_, err := uc.CreateMeeting(ctx, record.CreateMeetingInput{Title: "Sync", Attendees: []string{"Ann"}})
	require.NoError(t, err)

	list := uc.ListMeetings(ctx)
	require.Len(t, list, 1)
	list[0].Attendees[0] = "mutated"

	assert.Equal(t, "Ann", uc.ListMeetings(ctx)[0].Attendees[0])
}
