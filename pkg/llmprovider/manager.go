package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"butler-assistant/pkg/log"
)

// Manager asks providers in priority order, retrying each before falling
// back to the next.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
	m         *metrics
}

// Config controls retries and fallback.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration // multiplied by the attempt number
	MaxTotalTimeout time.Duration // bounds the whole chain; zero means unbounded
	Registerer      prometheus.Registerer
}

func NewManager(providers []Provider, cfg Config, l log.Logger) *Manager {
	return &Manager{
		providers: providers,
		cfg:       cfg,
		l:         l,
		m:         newMetrics(cfg.Registerer),
	}
}

// GenerateContent returns the first successful reply. Without fallback only
// the highest-priority provider is asked.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, p := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d of %d providers: %w", ErrDeadlineExceeded, i, len(m.providers), err)
		}

		resp, err := m.ask(ctx, p, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !m.cfg.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// ask calls one provider up to RetryAttempts times with linear backoff.
func (m *Manager) ask(ctx context.Context, p Provider, req *Request) (*Response, error) {
	attempts := max(m.cfg.RetryAttempts, 1)

	var err error
	for attempt := range attempts {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.cfg.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		start := time.Now()
		var resp *Response
		resp, err = p.GenerateContent(ctx, req)
		m.m.duration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

		if err == nil {
			m.succeeded(ctx, p, resp, attempt+1)
			return resp, nil
		}
		m.m.calls.WithLabelValues(p.Name(), outcomeError).Inc()
	}

	m.l.Warn(ctx, "LLM provider failed",
		"provider", p.Name(),
		"model", p.Model(),
		"attempts", attempts,
		"error", err.Error(),
	)
	return nil, err
}

func (m *Manager) succeeded(ctx context.Context, p Provider, resp *Response, attempts int) {
	m.m.calls.WithLabelValues(p.Name(), outcomeSuccess).Inc()

	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
		m.m.tokens.WithLabelValues(p.Name(), "input").Add(float64(in))
		m.m.tokens.WithLabelValues(p.Name(), "output").Add(float64(out))
	}
	m.l.Info(ctx, "LLM reply received",
		"provider", p.Name(),
		"model", p.Model(),
		"attempts", attempts,
		"input_tokens", in,
		"output_tokens", out,
	)
}
