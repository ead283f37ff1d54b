package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"butler-assistant/config"
	"butler-assistant/internal/app"
	"butler-assistant/pkg/log"
)

// withApp builds the assistant for one command and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := cmd.Context()
	a, err := app.New(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}
	defer a.Close()

	return fn(ctx, a)
}
