package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	enqueued  prometheus.Counter
	delivered prometheus.Counter
	failed    prometheus.Counter
	dropped   *prometheus.CounterVec
	cancelled prometheus.Counter
	queued    prometheus.Gauge
	pending   prometheus.Gauge
}

// newMetrics registers the scheduler collectors on reg. A nil reg leaves
// them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	opts := func(name, help string) prometheus.Opts {
		return prometheus.Opts{Namespace: "butler", Subsystem: "notification", Name: name, Help: help}
	}

	return &metrics{
		enqueued:  f.NewCounter(prometheus.CounterOpts(opts("enqueued_total", "Items added to the delivery queue."))),
		delivered: f.NewCounter(prometheus.CounterOpts(opts("delivered_total", "Items accepted by the sink."))),
		failed:    f.NewCounter(prometheus.CounterOpts(opts("failed_total", "Items the sink rejected."))),
		dropped: f.NewCounterVec(prometheus.CounterOpts(opts("dropped_total", "Items dropped before delivery, by reason.")),
			[]string{"reason"}),
		cancelled: f.NewCounter(prometheus.CounterOpts(opts("cancelled_total", "Deferred items cancelled before firing."))),
		queued:    f.NewGauge(prometheus.GaugeOpts(opts("queue_length", "Items waiting in the delivery queue."))),
		pending:   f.NewGauge(prometheus.GaugeOpts(opts("pending", "Deferred items waiting for their fire time."))),
	}
}
