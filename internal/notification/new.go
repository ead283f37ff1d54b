package notification

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkgLog "butler-assistant/pkg/log"
)

// Config holds the scheduler's delivery settings.
type Config struct {
	Spacing    time.Duration // pause after each hand-off to the sink
	Icon       string
	Clock      Clock
	Registerer prometheus.Registerer // nil leaves metrics unregistered
}

// Scheduler is a serialized notification queue with deferred delivery.
// Run drains the queue on a single goroutine; the other methods are safe
// for concurrent use.
type Scheduler struct {
	l     pkgLog.Logger
	sink  Sink
	prefs Preferences
	dnd   DndPolicy
	cfg   Config
	m     *metrics

	mu      sync.Mutex
	state   State
	queue   []Item
	timers  entryHeap
	pending map[Handle]*entry
	seq     uint64
	wake    chan struct{}
}

// New creates a Scheduler. prefs is read once here.
func New(l pkgLog.Logger, sink Sink, prefs Preferences, cfg Config) *Scheduler {
	if cfg.Spacing <= 0 {
		cfg.Spacing = DefaultSpacing
	}
	if cfg.Clock == nil {
		cfg.Clock = ClockFunc(time.Now)
	}

	return &Scheduler{
		l:       l,
		sink:    sink,
		prefs:   prefs,
		dnd:     prefs.DndPolicy(),
		cfg:     cfg,
		m:       newMetrics(cfg.Registerer),
		state:   StateIdle,
		pending: make(map[Handle]*entry),
		wake:    make(chan struct{}, 1),
	}
}
