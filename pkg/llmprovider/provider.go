package llmprovider

import "context"

// Provider is one chat model backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name ("openai", "anthropic", "gemini", ...)
	Name() string

	// Model returns the model being used
	Model() string
}

// Role values for Message.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request is a provider-neutral chat request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Response is a provider-neutral reply.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
