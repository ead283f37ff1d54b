package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	assistantHTTP "butler-assistant/internal/assistant/delivery/http"
	tgDelivery "butler-assistant/internal/assistant/delivery/telegram"
	"butler-assistant/internal/middleware"
	"butler-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw               middleware.Middleware
	gatherer         prometheus.Gatherer
	assistantHandler assistantHTTP.Handler
	telegramHandler  tgDelivery.Handler // nil when no bot token is configured
	ready            func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware       middleware.Middleware
	Gatherer         prometheus.Gatherer
	AssistantHandler assistantHTTP.Handler
	TelegramHandler  tgDelivery.Handler

	// Ready backs /ready; a nil func always reports ready.
	Ready func() error
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		gatherer:         cfg.Gatherer,
		assistantHandler: cfg.AssistantHandler,
		telegramHandler:  cfg.TelegramHandler,
		ready:            cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}
