package datemath

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO calendar date layout used for stored records.
	DateLayout = "2006-01-02"
	// ClockLayout is the 24-hour HH:MM layout used for stored records.
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// TokenKind classifies a temporal token.
type TokenKind int

const (
	KindUnknown TokenKind = iota
	KindToday
	KindTomorrow
	KindYesterday
	KindWeekday
	KindNextWeekday
	KindThisWeekday
	KindAbsoluteDate
	KindAbsoluteTime
	KindRelativeDuration
)

var kindNames = map[TokenKind]string{
	KindUnknown:          "unknown",
	KindToday:            "today",
	KindTomorrow:         "tomorrow",
	KindYesterday:        "yesterday",
	KindWeekday:          "weekday-name",
	KindNextWeekday:      "next-weekday",
	KindThisWeekday:      "this-weekday",
	KindAbsoluteDate:     "absolute-date",
	KindAbsoluteTime:     "absolute-time",
	KindRelativeDuration: "relative-duration",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsDate reports whether tokens of this kind resolve to a calendar date.
func (k TokenKind) IsDate() bool {
	return k != KindUnknown && k != KindAbsoluteTime
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the minute-of-day.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Add returns t shifted by d, wrapping around midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := (t.Minutes() + int(d/time.Minute)) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// String formats t as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns t placed on the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}
