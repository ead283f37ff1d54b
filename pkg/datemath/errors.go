package datemath

import "errors"

var (
	ErrInvalidDuration = errors.New("invalid duration format")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrUnknownUnit     = errors.New("unknown time unit")
)
