package notification

import (
	"context"
	"time"
)

// Sink renders or transmits a notification. The scheduler decides whether
// and when to call it.
type Sink interface {
	Deliver(ctx context.Context, payload Payload) (Acknowledgement, error)
}

// Clock supplies the current time for do-not-disturb checks and fire times.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
