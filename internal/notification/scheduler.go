package notification

import (
	"container/heap"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Enqueue appends item to the delivery queue.
func (s *Scheduler) Enqueue(item Item) {
	s.mu.Lock()
	s.queue = append(s.queue, item)
	s.m.enqueued.Inc()
	s.m.queued.Set(float64(len(s.queue)))
	s.mu.Unlock()

	s.signal()
}

// ScheduleAt delivers item at the given time. An item whose time has
// already passed is enqueued at once and ok is false; otherwise the
// returned handle can cancel it until it fires.
func (s *Scheduler) ScheduleAt(item Item, at time.Time) (h Handle, ok bool) {
	if !at.After(s.cfg.Clock.Now()) {
		s.Enqueue(item)
		return "", false
	}

	s.mu.Lock()
	s.seq++
	e := &entry{
		handle: Handle(uuid.NewString()),
		at:     at,
		seq:    s.seq,
		item:   item,
	}
	heap.Push(&s.timers, e)
	s.pending[e.handle] = e
	s.m.pending.Set(float64(len(s.pending)))
	s.mu.Unlock()

	s.signal()
	return e.handle, true
}

// Cancel disarms a pending deferred item. It reports false when the handle
// is unknown, already fired or already cancelled.
func (s *Scheduler) Cancel(h Handle) bool {
	s.mu.Lock()
	e, ok := s.pending[h]
	if ok {
		heap.Remove(&s.timers, e.index)
		delete(s.pending, h)
		s.m.cancelled.Inc()
		s.m.pending.Set(float64(len(s.pending)))
	}
	s.mu.Unlock()

	if ok {
		s.signal()
	}
	return ok
}

// State reports whether the queue is being drained.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending returns the number of deferred items not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// QueueLen returns the number of items waiting for delivery.
func (s *Scheduler) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Run drains the queue and fires deferred items until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.l.Infof(ctx, "%s: started (spacing %s, dnd %v)", logPrefixRun, s.cfg.Spacing, s.dnd.Enabled)

	for {
		s.fireDue()

		item, ok := s.dequeue()
		if ok {
			if s.deliver(ctx, item) {
				if err := s.pause(ctx, s.cfg.Spacing); err != nil {
					return s.stopped(ctx, err)
				}
			}
			continue
		}

		if err := s.idle(ctx); err != nil {
			return s.stopped(ctx, err)
		}
	}
}

func (s *Scheduler) stopped(ctx context.Context, err error) error {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()

	if errors.Is(err, context.Canceled) {
		s.l.Infof(ctx, "%s: stopped", logPrefixRun)
	}
	return err
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// dequeue pops the head of the queue and updates the queue state.
func (s *Scheduler) dequeue() (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		s.state = StateIdle
		return Item{}, false
	}

	item := s.queue[0]
	s.queue[0] = Item{}
	s.queue = s.queue[1:]
	s.state = StateProcessing
	s.m.queued.Set(float64(len(s.queue)))
	return item, true
}

// fireDue moves every deferred entry whose time has come onto the queue,
// in fire-time order.
func (s *Scheduler) fireDue() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.cfg.Clock.Now()
	for len(s.timers) > 0 && !s.timers[0].at.After(now) {
		e := heap.Pop(&s.timers).(*entry)
		delete(s.pending, e.handle)
		s.queue = append(s.queue, e.item)
		s.m.enqueued.Inc()
	}
	s.m.pending.Set(float64(len(s.pending)))
	s.m.queued.Set(float64(len(s.queue)))
}

// untilNextFire returns the wait before the earliest deferred entry.
func (s *Scheduler) untilNextFire() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.timers) == 0 {
		return 0, false
	}
	return max(s.timers[0].at.Sub(s.cfg.Clock.Now()), 0), true
}

// idle blocks until something is enqueued, scheduled or cancelled, or the
// next deferred entry is due.
func (s *Scheduler) idle(ctx context.Context) error {
	var fire <-chan time.Time
	if wait, ok := s.untilNextFire(); ok {
		t := time.NewTimer(wait)
		defer t.Stop()
		fire = t.C
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.wake:
	case <-fire:
	}
	return nil
}

// pause waits d after a hand-off. Deferred entries falling due meanwhile
// are still moved onto the queue at their fire time.
func (s *Scheduler) pause(ctx context.Context, d time.Duration) error {
	deadline := time.Now().Add(d)
	for {
		s.fireDue()

		wait := time.Until(deadline)
		if wait <= 0 {
			return nil
		}
		if next, ok := s.untilNextFire(); ok && next < wait {
			wait = next
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-s.wake:
			t.Stop()
		case <-t.C:
		}
	}
}

// deliver applies the gates in order (global switch, do-not-disturb,
// category) and hands the item to the sink. It reports whether the sink
// was called.
func (s *Scheduler) deliver(ctx context.Context, item Item) bool {
	if reason, drop := s.dropReason(item); drop {
		s.m.dropped.WithLabelValues(reason).Inc()
		s.l.Infof(ctx, "%s: skipping %q (%s)", logPrefixDeliver, item.Title, reason)
		return false
	}

	ack, err := s.sink.Deliver(ctx, s.payload(item))
	if err != nil {
		s.m.failed.Inc()
		s.l.Warnf(ctx, "%s: sink rejected %q: %v", logPrefixDeliver, item.Title, err)
		return true
	}
	s.m.delivered.Inc()

	if ack.Action != "" && item.OnAcknowledge != nil {
		item.OnAcknowledge(ack)
	}
	return true
}

func (s *Scheduler) dropReason(item Item) (string, bool) {
	switch {
	case !s.prefs.Enabled:
		return dropReasonDisabled, true
	case !item.BypassDND && s.dnd.Active(s.cfg.Clock.Now()):
		return dropReasonDND, true
	case !s.prefs.CategoryEnabled(item.Category):
		return dropReasonCategory, true
	}
	return "", false
}

func (s *Scheduler) payload(item Item) Payload {
	p := Payload{
		Title:          item.Title,
		Message:        item.Message,
		Icon:           s.cfg.Icon,
		Sound:          s.prefs.Sound,
		Actions:        slices.Clone(item.Actions),
		TimeoutSeconds: int(item.Timeout / time.Second),
		Category:       item.Category,
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if len(p.Actions) == 0 {
		p.Actions = slices.Clone(DefaultActions)
	}
	if p.TimeoutSeconds <= 0 {
		p.TimeoutSeconds = int(DefaultTimeout / time.Second)
	}
	return p
}
