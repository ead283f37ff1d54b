package record

import "errors"

var (
	ErrEmptyDescription = errors.New("record description is empty")
	ErrInvalidPriority  = errors.New("priority must be high, medium or low")
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrPersist          = errors.New("failed to persist record")
)
