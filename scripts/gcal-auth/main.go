// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar access for OAuth
// desktop credentials and save the token the assistant reads at startup.
//
// Usage:
//   go run ./scripts/gcal-auth [credentials.json] [token.json]
//
// Paths default to google_calendar.credentials_path and
// google_calendar.token_path from config.yaml.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"butler-assistant/config"
	"butler-assistant/pkg/gcalendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	credsPath := cfg.GoogleCalendar.CredentialsPath
	if credsPath == "" {
		credsPath = "google-credentials.json"
	}
	tokenPath := cfg.GoogleCalendar.TokenPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}
	if tokenPath == "" {
		tokenPath = gcalendar.DefaultTokenPath
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code from the browser and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Restart the assistant to enable Google Calendar sync.")
}
