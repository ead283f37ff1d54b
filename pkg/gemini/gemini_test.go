package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/"+DefaultModel+":generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if key := r.Header.Get("x-goog-api-key"); key != "test-key" {
			t.Errorf("unexpected api key header %q", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Very good, "}, {"text": "sir."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 3, "totalTokenCount": 13}
		}`))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		System: "You are Butler.",
		Messages: []Message{
			{Role: "user", Content: "Hello"},
			{Role: "assistant", Content: "Good day."},
			{Role: "user", Content: "Plan my day"},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Text != "Very good, sir." {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 13 {
		t.Errorf("TotalTokens = %d, want 13", resp.Usage.TotalTokens)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "You are Butler." {
		t.Errorf("unexpected system instruction %+v", got.SystemInstruction)
	}
	if len(got.Contents) != 3 || got.Contents[1].Role != roleModel || got.Contents[2].Role != roleUser {
		t.Errorf("unexpected contents %+v", got.Contents)
	}
	if got.GenerationConfig == nil || got.GenerationConfig.MaxOutputTokens != 500 {
		t.Errorf("unexpected generation config %+v", got.GenerationConfig)
	}
}

func TestGenerateContentErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"api error", http.StatusTooManyRequests, `{"error": {"code": 429, "message": "quota exceeded"}}`, "quota exceeded"},
		{"raw error", http.StatusBadGateway, `upstream down`, "upstream down"},
		{"no candidates", http.StatusOK, `{"candidates": []}`, "no candidates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := New(Config{APIKey: "k", APIURL: server.URL})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			_, err = client.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "hi"}}})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected missing key error")
	}
}
