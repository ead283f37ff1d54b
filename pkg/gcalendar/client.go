package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// file. Service account keys are used directly; OAuth desktop credentials
// need the token saved by scripts/gcal-auth at tokenPath.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClient(ctx, jwtConfig.TokenSource(ctx))
	}

	oauthConfig, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tok, err := readToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, oauthConfig.TokenSource(ctx, tok))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func newClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("oauth desktop credentials need a saved token at %s (run scripts/gcal-auth): %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes an OAuth token where NewClientFromCredentialsFile reads it.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateEvent inserts an event with popup and email reminder overrides.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	reminders := req.Reminders
	if len(reminders) == 0 {
		reminders = DefaultReminders
	}
	overrides := make([]*calendar.EventReminder, 0, len(reminders))
	for _, r := range reminders {
		overrides = append(overrides, &calendar.EventReminder{Method: r.Method, Minutes: r.Minutes})
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     req.Summary,
		Description: req.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}, nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
