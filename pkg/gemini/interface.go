package gemini

import "context"

// IGemini is a generateContent client.
// Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
