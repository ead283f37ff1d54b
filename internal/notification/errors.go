package notification

import "errors"

var (
	ErrInvalidPreferences = errors.New("invalid notification preferences")
)
