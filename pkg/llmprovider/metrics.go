package llmprovider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

type metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	tokens   *prometheus.CounterVec
}

// newMetrics registers the manager collectors on reg. A nil reg leaves
// them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "butler", Subsystem: "llm", Name: "calls_total",
			Help: "Provider calls, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "butler", Subsystem: "llm", Name: "call_duration_seconds",
			Help:    "Provider call latency.",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"provider"}),
		tokens: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "butler", Subsystem: "llm", Name: "tokens_total",
			Help: "Tokens consumed, by provider and direction.",
		}, []string{"provider", "direction"}),
	}
}
