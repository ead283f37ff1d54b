package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butler-assistant/config"
	"butler-assistant/internal/assistant"
	"butler-assistant/internal/notification"
	"butler-assistant/pkg/log"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Assistant: config.AssistantConfig{Timezone: "UTC", UserName: "sir"},
		Store: config.StoreConfig{
			Driver:     driver,
			DataDir:    filepath.Join(dir, "data"),
			SQLitePath: filepath.Join(dir, "butler.db"),
		},
		Notification: config.NotificationConfig{
			PreferencesPath: filepath.Join(dir, "preferences.json"),
			Spacing:         time.Millisecond,
			Sink:            config.SinkTelegram,
			TaskLead:        time.Hour,
			AppointmentLead: 30 * time.Minute,
		},
		GoogleCalendar: config.GoogleCalendarConfig{CalendarID: "primary"},
	}
}

func TestNewJSONStore(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StoreDriverJSON)

	a, err := New(ctx, cfg, log.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Nil(t, a.Bot)
	require.NotNil(t, a.Assistant)

	reply, err := a.Assistant.HandleCommand(ctx, assistant.CommandInput{Command: "add task buy milk"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ReplyTask, reply.Type)

	data, err := os.ReadFile(filepath.Join(cfg.Store.DataDir, "tasks.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "buy milk")
}

func TestNewSQLiteStore(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StoreDriverSQLite)

	a, err := New(ctx, cfg, log.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)

	_, err = a.Assistant.HandleCommand(ctx, assistant.CommandInput{Command: "schedule dentist appointment tomorrow at 3pm"})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	_, err = os.Stat(cfg.Store.SQLitePath)
	assert.NoError(t, err)
}

func TestConversationDisabledWithoutProviders(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t, config.StoreDriverJSON), log.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	reply, err := a.Assistant.HandleConversation(ctx, assistant.ConversationInput{Message: "good morning"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ReplyError, reply.Type)
}

func TestReadyFollowsScheduler(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, config.StoreDriverJSON), log.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Error(t, a.Ready())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.RunScheduler(ctx) }()

	require.Eventually(t, func() bool { return a.Ready() == nil }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Error(t, a.Ready())
}

func TestRunSweeperWithoutIntervalWaits(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, config.StoreDriverJSON), log.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.RunSweeper(ctx), context.DeadlineExceeded)
}

func TestCalendarTimezone(t *testing.T) {
	assert.Equal(t, "", calendarTimezone("Local"))
	assert.Equal(t, "", calendarTimezone(""))
	assert.Equal(t, "Europe/London", calendarTimezone("Europe/London"))
}

func TestDoNotDisturbFollowsAssistantTimezone(t *testing.T) {
	zone := "Asia/Tokyo"
	if _, offset := time.Now().Zone(); offset == 9*60*60 {
		zone = "America/New_York"
	}
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)

	cfg := testConfig(t, config.StoreDriverJSON)
	cfg.Assistant.Timezone = zone

	// A window around the current minute in zone, hours away from the host clock.
	local := time.Now().In(loc)
	minute := local.Hour()*60 + local.Minute()
	start, end := max(minute-2, 0), min(minute+2, 24*60-1)
	prefs := fmt.Sprintf(`{"notificationPreferences": {"focusMode": {"enabled": true, "dndStart": "%02d:%02d", "dndEnd": "%02d:%02d"}}}`,
		start/60, start%60, end/60, end%60)
	require.NoError(t, os.WriteFile(cfg.Notification.PreferencesPath, []byte(prefs), 0o644))

	reg := prometheus.NewRegistry()
	a, err := New(context.Background(), cfg, log.NewNop(), reg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.RunScheduler(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	a.Scheduler.Enqueue(notification.ReminderItem("stretch your legs"))

	require.Eventually(t, func() bool {
		return counterValue(t, reg, "butler_notification_dropped_total", "dnd") == 1
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, counterValue(t, reg, "butler_notification_delivered_total", ""))
}

func TestLocalClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	assert.Equal(t, loc, localClock(loc).Now().Location())
}

// counterValue sums a counter family, keeping only series carrying label
// value when it is set.
func counterValue(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			matched := label == ""
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					matched = true
				}
			}
			if matched {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}
