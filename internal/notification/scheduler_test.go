package notification_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butler-assistant/internal/notification"
	"butler-assistant/pkg/log"
)

const spacing = 20 * time.Millisecond

type delivery struct {
	payload notification.Payload
	at      time.Time
}

type recordingSink struct {
	mu     sync.Mutex
	got    []delivery
	failOn string
	ack    string
}

func (s *recordingSink) Deliver(ctx context.Context, p notification.Payload) (notification.Acknowledgement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, delivery{payload: p, at: time.Now()})
	if p.Message == s.failOn {
		return notification.Acknowledgement{}, errors.New("sink rejected")
	}
	return notification.Acknowledgement{Action: s.ack}, nil
}

func (s *recordingSink) deliveries() []delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]delivery(nil), s.got...)
}

func (s *recordingSink) messages() []string {
	var out []string
	for _, d := range s.deliveries() {
		out = append(out, d.payload.Message)
	}
	return out
}

func startScheduler(t *testing.T, sink notification.Sink, prefs notification.Preferences, cfg notification.Config) *notification.Scheduler {
	t.Helper()
	if cfg.Spacing == 0 {
		cfg.Spacing = spacing
	}
	s := notification.New(log.NewNop(), sink, prefs, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Error("scheduler did not stop")
		}
	})
	return s
}

func reminder(msg string) notification.Item {
	return notification.ReminderItem(msg)
}

func TestDeliversInOrderWithSpacing(t *testing.T) {
	sink := &recordingSink{}
	s := notification.New(log.NewNop(), sink, notification.DefaultPreferences(), notification.Config{Spacing: spacing})

	s.Enqueue(reminder("one"))
	s.Enqueue(reminder("two"))
	s.Enqueue(reminder("three"))
	assert.Equal(t, 3, s.QueueLen())
	assert.Equal(t, notification.StateIdle, s.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.Eventually(t, func() bool { return len(sink.deliveries()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"one", "two", "three"}, sink.messages())

	got := sink.deliveries()
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].at.Sub(got[i-1].at), spacing)
	}

	require.Eventually(t, func() bool { return s.State() == notification.StateIdle }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, s.QueueLen())
}

func TestDNDDropsWithoutBypass(t *testing.T) {
	prefs := notification.DefaultPreferences()
	prefs.FocusMode.Enabled = true
	tenAM := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	sink := &recordingSink{}
	s := startScheduler(t, sink, prefs, notification.Config{
		Clock: notification.ClockFunc(func() time.Time { return tenAM }),
	})

	s.Enqueue(reminder("quiet"))
	require.Eventually(t, func() bool { return s.QueueLen() == 0 && s.State() == notification.StateIdle }, time.Second, 5*time.Millisecond)
	time.Sleep(2 * spacing)
	assert.Empty(t, sink.deliveries())

	urgent := reminder("urgent")
	urgent.BypassDND = true
	s.Enqueue(urgent)
	require.Eventually(t, func() bool { return len(sink.deliveries()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"urgent"}, sink.messages())
}

func TestPreferenceGates(t *testing.T) {
	t.Run("globally disabled", func(t *testing.T) {
		prefs := notification.DefaultPreferences()
		prefs.Enabled = false
		sink := &recordingSink{}
		s := startScheduler(t, sink, prefs, notification.Config{})

		item := reminder("x")
		item.BypassDND = true
		s.Enqueue(item)
		require.Eventually(t, func() bool { return s.QueueLen() == 0 }, time.Second, 5*time.Millisecond)
		time.Sleep(2 * spacing)
		assert.Empty(t, sink.deliveries())
	})

	t.Run("category disabled", func(t *testing.T) {
		prefs := notification.DefaultPreferences()
		prefs.Tasks = false
		sink := &recordingSink{}
		s := startScheduler(t, sink, prefs, notification.Config{})

		s.Enqueue(notification.Item{Category: notification.CategoryTask, Message: "task"})
		s.Enqueue(notification.Item{Category: notification.CategoryAppointment, Message: "appointment"})
		require.Eventually(t, func() bool { return len(sink.deliveries()) == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(2 * spacing)
		assert.Equal(t, []string{"appointment"}, sink.messages())
	})
}

func TestSinkFailureIsNotRetried(t *testing.T) {
	sink := &recordingSink{failOn: "bad"}
	s := startScheduler(t, sink, notification.DefaultPreferences(), notification.Config{})

	s.Enqueue(reminder("bad"))
	s.Enqueue(reminder("good"))

	require.Eventually(t, func() bool { return len(sink.deliveries()) == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * spacing)
	assert.Equal(t, []string{"bad", "good"}, sink.messages())
}

func TestScheduleAtFiresAndClearsHandle(t *testing.T) {
	sink := &recordingSink{}
	s := startScheduler(t, sink, notification.DefaultPreferences(), notification.Config{})

	h, ok := s.ScheduleAt(reminder("later"), time.Now().Add(50*time.Millisecond))
	require.True(t, ok)
	require.NotEmpty(t, h)
	assert.Equal(t, 1, s.Pending())
	assert.Empty(t, sink.deliveries())

	require.Eventually(t, func() bool { return len(sink.deliveries()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Cancel(h), "cancelling a fired handle must fail")
}

func TestScheduleAtPastEnqueuesImmediately(t *testing.T) {
	sink := &recordingSink{}
	s := startScheduler(t, sink, notification.DefaultPreferences(), notification.Config{})

	h, ok := s.ScheduleAt(reminder("overdue"), time.Now().Add(-time.Minute))
	assert.False(t, ok)
	assert.Empty(t, h)
	require.Eventually(t, func() bool { return len(sink.deliveries()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestCancelPreventsDelivery(t *testing.T) {
	sink := &recordingSink{}
	s := startScheduler(t, sink, notification.DefaultPreferences(), notification.Config{})

	h, ok := s.ScheduleAt(reminder("never"), time.Now().Add(60*time.Millisecond))
	require.True(t, ok)

	assert.True(t, s.Cancel(h))
	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Cancel(h), "second cancel must fail")
	assert.False(t, s.Cancel("unknown"))

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, sink.deliveries())
}

func TestDeferredItemsFireInTimeOrder(t *testing.T) {
	sink := &recordingSink{}
	s := startScheduler(t, sink, notification.DefaultPreferences(), notification.Config{})

	now := time.Now()
	_, ok := s.ScheduleAt(reminder("second"), now.Add(90*time.Millisecond))
	require.True(t, ok)
	_, ok = s.ScheduleAt(reminder("first"), now.Add(40*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, 2, s.Pending())

	require.Eventually(t, func() bool { return len(sink.deliveries()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, sink.messages())
}

func TestAcknowledgementCallback(t *testing.T) {
	sink := &recordingSink{ack: "View"}
	s := startScheduler(t, sink, notification.DefaultPreferences(), notification.Config{})

	acked := make(chan string, 1)
	item := reminder("look")
	item.OnAcknowledge = func(a notification.Acknowledgement) { acked <- a.Action }
	s.Enqueue(item)

	select {
	case action := <-acked:
		assert.Equal(t, "View", action)
	case <-time.After(time.Second):
		t.Fatal("acknowledgement callback not called")
	}
}

func TestPayloadDefaults(t *testing.T) {
	prefs := notification.DefaultPreferences()
	prefs.Sound = false
	sink := &recordingSink{}
	s := startScheduler(t, sink, prefs, notification.Config{Icon: "assets/icon.png"})

	s.Enqueue(notification.Item{Category: notification.CategoryReminder, Message: "plain"})
	s.Enqueue(notification.Item{
		Category: notification.CategoryReminder,
		Title:    "Custom",
		Message:  "custom",
		Actions:  []string{"Snooze"},
		Timeout:  30 * time.Second,
	})

	require.Eventually(t, func() bool { return len(sink.deliveries()) == 2 }, time.Second, 5*time.Millisecond)
	got := sink.deliveries()

	assert.Equal(t, notification.Payload{
		Title:          "Butler AI",
		Message:        "plain",
		Icon:           "assets/icon.png",
		Sound:          false,
		Actions:        []string{"Dismiss", "View"},
		TimeoutSeconds: 10,
		Category:       notification.CategoryReminder,
	}, got[0].payload)
	assert.Equal(t, "Custom", got[1].payload.Title)
	assert.Equal(t, []string{"Snooze"}, got[1].payload.Actions)
	assert.Equal(t, 30, got[1].payload.TimeoutSeconds)
}

func TestMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	prefs := notification.DefaultPreferences()
	prefs.Reminders = false
	sink := &recordingSink{}
	s := startScheduler(t, sink, prefs, notification.Config{Registerer: reg})

	s.Enqueue(reminder("dropped"))
	s.Enqueue(notification.Item{Category: notification.CategoryTask, Message: "sent"})
	require.Eventually(t, func() bool { return len(sink.deliveries()) == 1 }, time.Second, 5*time.Millisecond)

	values := gather(t, reg)
	assert.Equal(t, 2.0, values["butler_notification_enqueued_total"])
	assert.Equal(t, 1.0, values["butler_notification_delivered_total"])
	assert.Equal(t, 1.0, values["butler_notification_dropped_total{reason=category}"])
}

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[name] = m.GetGauge().GetValue()
			}
		}
	}
	return out
}

func TestTaskAndAppointmentItems(t *testing.T) {
	assert.Equal(t, "Task Reminder", notification.TaskItem(modelTask("file taxes")).Title)

	a := notification.AppointmentItem(modelAppointment("dentist", "15:00"))
	assert.Equal(t, "Upcoming Appointment", a.Title)
	assert.Equal(t, "dentist at 15:00", a.Message)
	assert.Equal(t, notification.CategoryAppointment, a.Category)

	assert.Equal(t, "call bank", notification.AppointmentItem(modelAppointment("call bank", "")).Message)
	assert.Equal(t, notification.CategoryReminder, notification.ReminderItem("stretch").Category)
}
