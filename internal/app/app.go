package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"butler-assistant/config"
	"butler-assistant/internal/assistant"
	assistantUC "butler-assistant/internal/assistant/usecase"
	"butler-assistant/internal/extractor"
	"butler-assistant/internal/notification"
	"butler-assistant/internal/notification/sink"
	"butler-assistant/internal/record/repository"
	"butler-assistant/internal/record/repository/jsonfile"
	"butler-assistant/internal/record/repository/sqlite"
	recordUC "butler-assistant/internal/record/usecase"
	"butler-assistant/internal/router"
	"butler-assistant/pkg/datemath"
	"butler-assistant/pkg/gcalendar"
	"butler-assistant/pkg/llmprovider"
	"butler-assistant/pkg/log"
	"butler-assistant/pkg/telegram"
)

// App is the assembled assistant shared by the API server and the CLI.
type App struct {
	Assistant assistant.UseCase
	Scheduler *notification.Scheduler
	Bot       *telegram.Bot // nil without a bot token

	l       log.Logger
	sweep   time.Duration
	running atomic.Bool
	closers []func() error
}

// New builds every component from cfg. The calendar and the language model
// are optional; failures to set them up are logged and the app runs without.
func New(ctx context.Context, cfg *config.Config, l log.Logger, reg prometheus.Registerer) (*App, error) {
	a := &App{l: l, sweep: cfg.Notification.SweepInterval}

	dates, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		return nil, err
	}

	repo, err := a.openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	records, err := recordUC.New(ctx, l, repo, dates)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Telegram.BotToken != "" {
		a.Bot = telegram.NewBot(cfg.Telegram.BotToken)
	}

	prefs, err := notification.LoadPreferences(cfg.Notification.PreferencesPath)
	if err != nil {
		l.Warnf(ctx, "%s: %v; using default preferences", logPrefixNew, err)
		prefs = notification.DefaultPreferences()
	}
	a.Scheduler = notification.New(l, a.newSink(ctx, cfg), prefs, notification.Config{
		Spacing:    cfg.Notification.Spacing,
		Icon:       cfg.Notification.IconPath,
		Registerer: reg,
		Clock:      localClock(dates.Location()),
	})

	a.Assistant = assistantUC.New(
		l,
		router.New(l),
		extractor.New(dates),
		records,
		a.Scheduler,
		a.newCalendar(ctx, cfg.GoogleCalendar),
		a.newLLM(ctx, &cfg.LLM, reg),
		dates,
		assistantUC.Config{
			UserName:        cfg.Assistant.UserName,
			Timezone:        calendarTimezone(cfg.Assistant.Timezone),
			CalendarID:      cfg.GoogleCalendar.CalendarID,
			TaskLead:        cfg.Notification.TaskLead,
			AppointmentLead: cfg.Notification.AppointmentLead,
		},
	)

	return a, nil
}

// localClock reads the wall clock in the assistant's timezone.
func localClock(loc *time.Location) notification.Clock {
	return notification.ClockFunc(func() time.Time { return time.Now().In(loc) })
}

func (a *App) openStore(ctx context.Context, cfg config.StoreConfig) (repository.Repository, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		repo, err := sqlite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		a.l.Infof(ctx, "%s: sqlite store at %s", logPrefixNew, cfg.SQLitePath)
		return repo, nil
	default:
		repo, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		a.l.Infof(ctx, "%s: json store in %s", logPrefixNew, cfg.DataDir)
		return repo, nil
	}
}

func (a *App) newSink(ctx context.Context, cfg *config.Config) notification.Sink {
	if cfg.Notification.Sink == config.SinkTelegram {
		if a.Bot != nil && cfg.Telegram.ChatID != 0 {
			return sink.NewTelegramSink(a.Bot, cfg.Telegram.ChatID)
		}
		a.l.Warnf(ctx, "%s: telegram sink needs telegram.bot_token and telegram.chat_id; logging instead", logPrefixNew)
	}
	return sink.NewLogSink(a.l)
}

func (a *App) newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig) assistant.Calendar {
	if cfg.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		a.l.Warnf(ctx, "%s: Google Calendar not available: %v", logPrefixNew, err)
		a.l.Warnf(ctx, "%s: run `go run ./scripts/gcal-auth` to generate %s", logPrefixNew, cfg.TokenPath)
		return nil
	}
	a.l.Infof(ctx, "%s: Google Calendar initialized", logPrefixNew)
	return client
}

func (a *App) newLLM(ctx context.Context, cfg *config.LLMConfig, reg prometheus.Registerer) assistant.LLM {
	if len(cfg.Providers) == 0 {
		a.l.Warnf(ctx, "%s: no LLM providers configured; conversation disabled", logPrefixNew)
		return nil
	}
	manager, err := llmprovider.NewManagerFromConfig(ctx, cfg, a.l, reg)
	if err != nil {
		a.l.Warnf(ctx, "%s: LLM unavailable: %v", logPrefixNew, err)
		return nil
	}
	return manager
}

// RunSweeper enqueues due reminders every sweep interval until ctx ends.
func (a *App) RunSweeper(ctx context.Context) error {
	if a.sweep <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(a.sweep)
	defer ticker.Stop()

	a.Assistant.SweepReminders(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.Assistant.SweepReminders(ctx)
		}
	}
}

// RunScheduler drains the notification queue until ctx ends.
func (a *App) RunScheduler(ctx context.Context) error {
	a.running.Store(true)
	defer a.running.Store(false)
	return a.Scheduler.Run(ctx)
}

// Ready reports whether the notification scheduler is running.
func (a *App) Ready() error {
	if !a.running.Load() {
		return errors.New("notification scheduler not running")
	}
	return nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close app: %w", errors.Join(errs...))
	}
	return nil
}

// calendarTimezone maps the configured zone to the IANA name sent to Google.
// "Local" has no IANA name; the RFC 3339 offsets then carry the zone.
func calendarTimezone(tz string) string {
	if tz == "" || tz == "Local" {
		return ""
	}
	return tz
}
