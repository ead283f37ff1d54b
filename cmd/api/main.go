package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"butler-assistant/config"
	_ "butler-assistant/docs" // Swagger docs
	"butler-assistant/internal/app"
	assistantHTTP "butler-assistant/internal/assistant/delivery/http"
	tgDelivery "butler-assistant/internal/assistant/delivery/telegram"
	"butler-assistant/internal/httpserver"
	"butler-assistant/internal/middleware"
	"butler-assistant/pkg/log"
)

// @title       Butler Assistant API
// @description Personal butler: meetings, tasks, appointments, itineraries, reminders and conversation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Butler Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 4. Assistant, store, scheduler, calendar, LLM
	butler, err := app.New(ctx, cfg, logger, reg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		os.Exit(1)
	}
	defer butler.Close()

	// 5. Telegram webhook (optional)
	var telegramHandler tgDelivery.Handler
	if butler.Bot != nil {
		telegramHandler = tgDelivery.New(logger, butler.Assistant, butler.Bot)
		registerWebhook(ctx, logger, cfg.Telegram, butler)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 6. HTTP server
	mw := middleware.New(logger, cfg.RateLimit, cfg.Telegram.SecretToken, reg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		Gatherer:         reg,
		AssistantHandler: assistantHTTP.New(logger, butler.Assistant),
		TelegramHandler:  telegramHandler,
		Ready:            butler.Ready,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error { return butler.RunScheduler(gctx) })
	g.Go(func() error { return butler.RunSweeper(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server, detecting an ngrok tunnel
// when no webhook URL is configured.
func registerWebhook(ctx context.Context, logger log.Logger, cfg config.TelegramConfig, butler *app.App) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, defaultNgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := butler.Bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
