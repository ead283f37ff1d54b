package openai

import "context"

// IOpenAI is a chat completions client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates an OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &openaiImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
