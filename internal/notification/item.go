package notification

import (
	"butler-assistant/internal/model"
)

// TaskItem builds the reminder for a task.
func TaskItem(task model.Task) Item {
	return Item{
		Category: CategoryTask,
		Title:    TitleTaskReminder,
		Message:  task.Description,
	}
}

// AppointmentItem builds the reminder for an appointment.
func AppointmentItem(a model.Appointment) Item {
	msg := a.Description
	if a.Time != "" {
		msg += " at " + a.Time
	}
	return Item{
		Category: CategoryAppointment,
		Title:    TitleUpcomingAppointment,
		Message:  msg,
	}
}

// MeetingItem builds the reminder for a meeting.
func MeetingItem(m model.Meeting) Item {
	msg := m.Title
	if m.StartTime != "" {
		msg += " at " + m.StartTime
	}
	if m.Location != "" {
		msg += " (" + m.Location + ")"
	}
	return Item{
		Category: CategoryAppointment,
		Title:    TitleUpcomingAppointment,
		Message:  msg,
	}
}

// ReminderItem builds a free-form reminder.
func ReminderItem(message string) Item {
	return Item{
		Category: CategoryReminder,
		Title:    TitleButlerReminder,
		Message:  message,
	}
}
