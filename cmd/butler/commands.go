package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"butler-assistant/internal/app"
	"butler-assistant/internal/assistant"
	"butler-assistant/internal/intent"
)

var (
	meetingDetails string
	meetingICSPath string

	todayAgenda bool

	remindAt        string
	remindIn        time.Duration
	remindBypassDND bool
)

func init() {
	meetingCmd.Flags().StringVar(&meetingDetails, "details", "", "extra meeting details (description, location, attendees)")
	meetingCmd.Flags().StringVar(&meetingICSPath, "ics", "", "also write the meeting to this .ics file")

	todayCmd.Flags().BoolVar(&todayAgenda, "agenda", false, "print the raw agenda instead of the itinerary")

	remindCmd.Flags().StringVar(&remindAt, "at", "", "deliver at this RFC3339 time")
	remindCmd.Flags().DurationVar(&remindIn, "in", 0, "deliver after this delay, e.g. 10m")
	remindCmd.Flags().BoolVar(&remindBypassDND, "bypass-dnd", false, "deliver even during do-not-disturb hours")
}

// meetingCmd schedules a meeting from a free-text command
var meetingCmd = &cobra.Command{
	Use:   "meeting <command...>",
	Short: "Schedule a meeting",
	Long: `Schedule a meeting from a free-text command.

Examples:
  butler meeting schedule a meeting with Bob tomorrow at 3pm for 30 minutes
  butler meeting sync with Alice friday at 10am --details "at Room 4" --ics sync.ics`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMeeting,
}

// taskCmd adds a task
var taskCmd = &cobra.Command{
	Use:   "task <command...>",
	Short: "Add a task",
	Long: `Add a task with an optional due date and priority.

Examples:
  butler task submit the report due tomorrow high priority`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTask,
}

// scheduleCmd books an appointment
var scheduleCmd = &cobra.Command{
	Use:   "schedule <command...>",
	Short: "Schedule an appointment",
	Long: `Schedule an appointment and sync it to Google Calendar when configured.

Examples:
  butler schedule dentist appointment next monday at 2:30pm`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSchedule,
}

// parseReplyCmd classifies an assistant reply
var parseReplyCmd = &cobra.Command{
	Use:   "parse-reply [text|-]",
	Short: "Detect the intent of an assistant reply",
	Long: `Detect whether an assistant reply confirms an appointment, a task or an
itinerary and print the result as JSON. Reads stdin when no text is given.`,
	RunE: runParseReply,
}

// todayCmd prints today's itinerary
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's itinerary",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

// remindCmd delivers a one-off reminder
var remindCmd = &cobra.Command{
	Use:   "remind <message...>",
	Short: "Send a reminder now or later",
	Long: `Send a reminder through the configured sink. With --at or --in the command
waits until the reminder has been delivered.

Examples:
  butler remind stretch your legs --in 25m
  butler remind call mum --at 2024-05-01T18:00:00+02:00 --bypass-dnd`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemind,
}

func runMeeting(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		return scheduleMeeting(ctx, a.Assistant, cmd.OutOrStdout(), strings.Join(args, " "), meetingDetails, meetingICSPath)
	})
}

func runTask(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		reply, err := a.Assistant.AddTask(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return writeReply(cmd.OutOrStdout(), reply, jsonOutput)
	})
}

func runSchedule(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		reply, err := a.Assistant.ScheduleAppointment(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return writeReply(cmd.OutOrStdout(), reply, jsonOutput)
	})
}

// runParseReply needs no store, so it skips building the app.
func runParseReply(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), intent.Parse(text))
}

func runToday(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if todayAgenda {
			return writeJSON(cmd.OutOrStdout(), a.Assistant.Agenda(ctx))
		}
		return writeReply(cmd.OutOrStdout(), a.Assistant.Itinerary(ctx), jsonOutput)
	})
}

func runRemind(cmd *cobra.Command, args []string) error {
	at, err := reminderTime(remindAt, remindIn, time.Now())
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- a.RunScheduler(runCtx) }()

		out, err := a.Assistant.ScheduleReminder(ctx, assistant.ReminderInput{
			Message:   strings.Join(args, " "),
			At:        at,
			BypassDND: remindBypassDND,
		})
		if err != nil {
			return err
		}
		if out.Deferred {
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder set for %s.\n", out.At.Format(time.RFC1123))
		}

		if err := waitDelivered(ctx, a, drainPoll); err != nil {
			return err
		}
		cancel()
		<-done
		fmt.Fprintln(cmd.OutOrStdout(), "Reminder delivered.")
		return nil
	})
}

func scheduleMeeting(ctx context.Context, uc assistant.UseCase, w io.Writer, command, details, icsPath string) error {
	reply, err := uc.ScheduleMeeting(ctx, assistant.CommandInput{Command: command, Details: details})
	if err != nil {
		return err
	}
	if err := writeReply(w, reply, jsonOutput); err != nil {
		return err
	}
	if icsPath == "" || reply.Meeting == nil {
		return nil
	}

	data, err := uc.MeetingICS(ctx, reply.Meeting.ID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(icsPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", icsPath, err)
	}
	fmt.Fprintf(w, "\nCalendar file written to %s\n", icsPath)
	return nil
}

// reminderTime resolves --at and --in into a delivery time; zero means now.
func reminderTime(at string, in time.Duration, now time.Time) (time.Time, error) {
	switch {
	case at != "" && in != 0:
		return time.Time{}, fmt.Errorf("use either --at or --in, not both")
	case at != "":
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --at %q: %w", at, err)
		}
		return t, nil
	case in < 0:
		return time.Time{}, fmt.Errorf("invalid --in %s: must not be negative", in)
	case in > 0:
		return now.Add(in), nil
	}
	return time.Time{}, nil
}

func readText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return "", fmt.Errorf("no reply text to parse")
	}
	return string(b), nil
}
