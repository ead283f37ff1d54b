// Package main implements the butler CLI for working with the assistant
// from a terminal, without the HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// configPath overrides the config.yaml search path
	configPath string
	// logLevel overrides logger.level from the config
	logLevel string
	// jsonOutput prints replies as JSON instead of Markdown
	jsonOutput bool

	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "butler",
	Short: "Personal butler for meetings, tasks, appointments and reminders",
	Long: `butler runs the assistant against the configured store without the HTTP server.
Records are shared with the API, so anything added here shows up in its agenda.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print replies as JSON")

	rootCmd.AddCommand(meetingCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(parseReplyCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(remindCmd)
}
