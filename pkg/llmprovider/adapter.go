package llmprovider

import (
	"context"

	"butler-assistant/pkg/anthropic"
	"butler-assistant/pkg/gemini"
	"butler-assistant/pkg/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	// OpenAI-compatible endpoints served by the openai client.
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// OpenAIAdapter adapts pkg/openai to Provider. name distinguishes
// OpenAI-compatible services such as DeepSeek.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: ProviderOpenAI}
}

func newCompatibleAdapter(client openai.IOpenAI, name string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name}
}

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		System:      req.System,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) Name() string  { return a.name }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// AnthropicAdapter adapts pkg/anthropic to Provider.
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]anthropic.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = anthropic.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &anthropic.Request{
		System:      req.System,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: ProviderAnthropic, Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderAnthropic,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

func (a *AnthropicAdapter) Name() string  { return ProviderAnthropic }
func (a *AnthropicAdapter) Model() string { return a.client.Model() }

// GeminiAdapter adapts pkg/gemini to Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = gemini.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      req.System,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return ProviderGemini }
func (a *GeminiAdapter) Model() string { return a.client.Model() }
