package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"butler-assistant/config"
	"butler-assistant/pkg/log"
)

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter // nil when rate limiting is disabled
	telegramSecret string
	metrics        *httpMetrics
}

// New builds the shared middleware set. reg receives the HTTP metrics.
func New(l log.Logger, rl config.RateLimitConfig, telegramSecret string, reg prometheus.Registerer) Middleware {
	mw := Middleware{
		l:              l,
		telegramSecret: telegramSecret,
		metrics:        newHTTPMetrics(reg),
	}
	if rl.Enabled {
		mw.limiter = newRateLimiter(rl.RequestsPerMinute, rl.Burst, rl.MaxClients)
	}
	return mw
}
