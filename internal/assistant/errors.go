package assistant

import "errors"

var (
	ErrEmptyCommand     = errors.New("command is empty")
	ErrEmptyMessage     = errors.New("message is empty")
	ErrEmptyReminder    = errors.New("reminder message is empty")
	ErrReminderNotFound = errors.New("reminder not found or already delivered")
)
