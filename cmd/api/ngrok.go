package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultNgrokAPI = "http://ngrok:4040"
	ngrokAttempts   = 10
	ngrokRetryDelay = 3 * time.Second
)

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL asks the local ngrok agent for its public URL, preferring
// https. ngrok may still be starting, so it retries a few times.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := fetchNgrokURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return url, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokRetryDelay):
		}
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchNgrokURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	for _, t := range out.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(out.Tunnels) > 0 {
		return out.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("no active tunnels")
}
