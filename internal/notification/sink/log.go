package sink

import (
	"context"

	"butler-assistant/internal/notification"
	pkgLog "butler-assistant/pkg/log"
)

// LogSink writes notifications to the logger. It never reports an acknowledgement.
type LogSink struct {
	l pkgLog.Logger
}

var _ notification.Sink = (*LogSink)(nil)

func NewLogSink(l pkgLog.Logger) *LogSink {
	return &LogSink{l: l}
}

func (s *LogSink) Deliver(ctx context.Context, p notification.Payload) (notification.Acknowledgement, error) {
	s.l.Info(ctx, "notification",
		"category", string(p.Category),
		"title", p.Title,
		"message", p.Message,
		"sound", p.Sound,
		"timeout_seconds", p.TimeoutSeconds,
	)
	return notification.Acknowledgement{}, nil
}
