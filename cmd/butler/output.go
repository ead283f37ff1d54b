package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"butler-assistant/internal/app"
	"butler-assistant/internal/assistant"
	"butler-assistant/internal/notification"
)

const drainPoll = 200 * time.Millisecond

func writeReply(w io.Writer, reply assistant.Reply, asJSON bool) error {
	if asJSON {
		return writeJSON(w, reply)
	}

	content := strings.TrimRight(reply.Content, "\n")
	if reply.CalendarLink != "" {
		content += "\n\nGoogle Calendar: " + reply.CalendarLink
	}
	_, err := fmt.Fprintln(w, content)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// waitDelivered blocks until the scheduler has nothing queued or pending.
func waitDelivered(ctx context.Context, a *app.App, poll time.Duration) error {
	t := time.NewTicker(poll)
	defer t.Stop()

	for {
		if drained(a.Scheduler) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func drained(s *notification.Scheduler) bool {
	return s.Pending() == 0 && s.QueueLen() == 0 && s.State() == notification.StateIdle
}
