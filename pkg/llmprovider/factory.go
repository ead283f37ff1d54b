package llmprovider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"butler-assistant/config"
	"butler-assistant/pkg/anthropic"
	"butler-assistant/pkg/gemini"
	"butler-assistant/pkg/log"
	"butler-assistant/pkg/openai"
)

// InitializeProviders builds the enabled providers of cfg sorted by priority
// (ascending). Providers that fail to initialize are logged and skipped.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrs []error
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s (priority %d): %v", p.Name, p.Priority, err)
			initErrs = append(initErrs, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %w", errors.Join(initErrs...))
	}
	return providers, nil
}

// NewManagerFromConfig initializes the providers and wraps them in a
// Manager whose metrics are registered on reg.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger, reg prometheus.Registerer) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseDuration(cfg.RetryDelay, time.Second)
	if err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout, 0)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	return NewManager(providers, Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   max(cfg.RetryAttempts, 1),
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
		Registerer:      reg,
	}, l), nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	timeout, err := parseDuration(cfg.Timeout, 0)
	if err != nil {
		return nil, fmt.Errorf("provider %s: timeout: %w", cfg.Name, err)
	}
	var httpClient *http.Client
	if timeout > 0 {
		httpClient = &http.Client{Timeout: timeout}
	}

	switch cfg.Name {
	case ProviderOpenAI:
		client, err := openai.New(openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter(client), nil

	case ProviderAnthropic:
		client, err := anthropic.New(anthropic.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderDeepSeek, ProviderQwen:
		compat := compatibleDefaults[cfg.Name]
		client, err := openai.New(openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cmp.Or(cfg.Model, compat.model),
			BaseURL:    cmp.Or(cfg.BaseURL, compat.baseURL),
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return newCompatibleAdapter(client, cfg.Name), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// compatibleDefaults are the endpoints of OpenAI-compatible services.
var compatibleDefaults = map[string]struct{ baseURL, model string }{
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	ProviderQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}
