package anthropic

import "context"

// IAnthropic is a Messages API client.
// Implementations are safe for concurrent use.
type IAnthropic interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates an Anthropic client with the given configuration
func New(cfg Config) (IAnthropic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
