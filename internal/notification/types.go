package notification

import (
	"time"

	"butler-assistant/pkg/datemath"
)

// Category selects which preference gates an item.
type Category string

const (
	CategoryTask        Category = "task"
	CategoryAppointment Category = "appointment"
	CategoryReminder    Category = "reminder"
)

// Item is a notification waiting in the scheduler. Zero Actions and Timeout
// take the scheduler defaults.
type Item struct {
	Category      Category
	Title         string
	Message       string
	BypassDND     bool
	Actions       []string
	Timeout       time.Duration
	OnAcknowledge func(Acknowledgement)
}

// Payload is what a Sink receives.
type Payload struct {
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Icon           string   `json:"icon"`
	Sound          bool     `json:"sound"`
	Actions        []string `json:"actions"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
	Category       Category `json:"category"`
}

// Acknowledgement reports the user's response to a delivered notification.
// An empty Action means the sink has no response to report.
type Acknowledgement struct {
	Action string
}

// Handle identifies one deferred notification.
type Handle string

// State is the delivery queue state.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
)

// Preferences mirrors the notificationPreferences object of preferences.json.
type Preferences struct {
	Enabled      bool      `mapstructure:"enabled" json:"enabled"`
	Sound        bool      `mapstructure:"sound" json:"sound"`
	Tasks        bool      `mapstructure:"tasks" json:"tasks"`
	Appointments bool      `mapstructure:"appointments" json:"appointments"`
	Reminders    bool      `mapstructure:"reminders" json:"reminders"`
	FocusMode    FocusMode `mapstructure:"focusmode" json:"focusMode"`
}

// FocusMode holds the do-not-disturb window as HH:MM strings.
type FocusMode struct {
	Enabled  bool   `mapstructure:"enabled" json:"enabled"`
	DndStart string `mapstructure:"dndstart" json:"dndStart"`
	DndEnd   string `mapstructure:"dndend" json:"dndEnd"`
}

// CategoryEnabled reports whether items of c may be delivered.
// Unknown categories are never enabled.
func (p Preferences) CategoryEnabled(c Category) bool {
	switch c {
	case CategoryTask:
		return p.Tasks
	case CategoryAppointment:
		return p.Appointments
	case CategoryReminder:
		return p.Reminders
	}
	return false
}

// DndPolicy returns the focus-mode window in minutes of day. Unparsable
// bounds fall back to the defaults.
func (p Preferences) DndPolicy() DndPolicy {
	start, ok := datemath.ParseClock(p.FocusMode.DndStart)
	if !ok {
		start, _ = datemath.ParseClock(DefaultDndStart)
	}
	end, ok := datemath.ParseClock(p.FocusMode.DndEnd)
	if !ok {
		end, _ = datemath.ParseClock(DefaultDndEnd)
	}
	return DndPolicy{
		Enabled:     p.FocusMode.Enabled,
		WindowStart: start.Minutes(),
		WindowEnd:   end.Minutes(),
	}
}

// DndPolicy is a quiet-hours window in minutes of day.
type DndPolicy struct {
	Enabled     bool
	WindowStart int
	WindowEnd   int
}

// Active reports whether t's minute of day lies in [WindowStart, WindowEnd].
// A window with WindowStart > WindowEnd never matches; wrapping past
// midnight is not supported.
func (d DndPolicy) Active(t time.Time) bool {
	if !d.Enabled {
		return false
	}
	m := t.Hour()*60 + t.Minute()
	return m >= d.WindowStart && m <= d.WindowEnd
}
