package anthropic

import "time"

const (
	DefaultModel     = "claude-3-haiku-20240307"
	DefaultBaseURL   = "https://api.anthropic.com/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultMaxTokens = 1000
	APIVersion       = "2023-06-01"

	contentTypeText  = "text"
	headerAPIKey     = "x-api-key"
	headerAPIVersion = "anthropic-version"
)
