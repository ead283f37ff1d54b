package llmprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"butler-assistant/config"
	"butler-assistant/pkg/llmprovider"
	"butler-assistant/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		providers []config.ProviderConfig
		want      []string
		wantErr   bool
	}{
		{
			name: "ordered by priority",
			providers: []config.ProviderConfig{
				{Name: "anthropic", Enabled: true, Priority: 2, APIKey: "a"},
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "o"},
			},
			want: []string{"openai", "anthropic"},
		},
		{
			name: "skips broken provider",
			providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1},
				{Name: "anthropic", Enabled: true, Priority: 2, APIKey: "a"},
			},
			want: []string{"anthropic"},
		},
		{
			name:      "all disabled",
			providers: []config.ProviderConfig{{Name: "openai", Priority: 1, APIKey: "o"}},
			wantErr:   true,
		},
		{
			name: "gemini and compatible endpoints",
			providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 3, APIKey: "q"},
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g"},
				{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "d"},
			},
			want: []string{"gemini", "deepseek", "qwen"},
		},
		{
			name:      "unknown provider only",
			providers: []config.ProviderConfig{{Name: "mistral", Enabled: true, Priority: 1, APIKey: "m"}},
			wantErr:   true,
		},
		{
			name:      "bad timeout",
			providers: []config.ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", Timeout: "soon"}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{Providers: tt.providers}, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(providers) != len(tt.want) {
				t.Fatalf("got %d providers, want %d", len(providers), len(tt.want))
			}
			for i, name := range tt.want {
				if providers[i].Name() != name {
					t.Errorf("provider %d = %s, want %s", i, providers[i].Name(), name)
				}
			}
		})
	}
}

func TestManagerFallsBackFromOpenAIToAnthropic(t *testing.T) {
	openaiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"message": "overloaded"}}`))
	}))
	defer openaiServer.Close()

	anthropicServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [{"type": "text", "text": "At your service."}], "usage": {"input_tokens": 5, "output_tokens": 4}}`))
	}))
	defer anthropicServer.Close()

	manager, err := llmprovider.NewManagerFromConfig(context.Background(), &config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      "1ms",
		MaxTotalTimeout: "5s",
		Providers: []config.ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "o", BaseURL: openaiServer.URL},
			{Name: "anthropic", Enabled: true, Priority: 2, APIKey: "a", BaseURL: anthropicServer.URL},
		},
	}, log.NewNop(), nil)
	if err != nil {
		t.Fatalf("NewManagerFromConfig: %v", err)
	}

	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		System:   "You are Butler.",
		Messages: []llmprovider.Message{{Role: llmprovider.RoleUser, Content: "Hello"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.ProviderName != "anthropic" || resp.Text != "At your service." {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.Usage.TotalTokens != 9 {
		t.Errorf("TotalTokens = %d, want 9", resp.Usage.TotalTokens)
	}
}

func TestDeepSeekUsesCompatibleEndpoint(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Indeed."}}], "usage": {"total_tokens": 3}}`))
	}))
	defer server.Close()

	providers, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "d", BaseURL: server.URL}},
	}, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}

	resp, err := providers[0].GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: llmprovider.RoleUser, Content: "Hello"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if path != "/chat/completions" {
		t.Errorf("path = %s", path)
	}
	if resp.ProviderName != "deepseek" || resp.ModelName != "deepseek-chat" || resp.Text != "Indeed." {
		t.Errorf("unexpected response %+v", resp)
	}
}
