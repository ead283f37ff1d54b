package notification

import "time"

const (
	DefaultTitle    = "Butler AI"
	DefaultTimeout  = 10 * time.Second
	DefaultSpacing  = time.Second
	DefaultDndStart = "09:00"
	DefaultDndEnd   = "12:00"
)

// DefaultActions are offered when an item sets none.
var DefaultActions = []string{"Dismiss", "View"}

const (
	TitleTaskReminder        = "Task Reminder"
	TitleUpcomingAppointment = "Upcoming Appointment"
	TitleButlerReminder      = "Butler Reminder"
)

const (
	dropReasonDisabled = "disabled"
	dropReasonDND      = "dnd"
	dropReasonCategory = "category"
)

const (
	logPrefixRun     = "internal.notification.Scheduler.Run"
	logPrefixDeliver = "internal.notification.Scheduler.deliver"
)
