package llmprovider

import "errors"

var (
	ErrNoProvidersConfigured = errors.New("llmprovider: no providers configured")
	ErrAllProvidersFailed    = errors.New("llmprovider: all providers failed")
	// ErrDeadlineExceeded means the fallback chain stopped before trying
	// every provider.
	ErrDeadlineExceeded = errors.New("llmprovider: deadline exceeded")
)

// ProviderError names the provider behind a failed call.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string { return e.Provider + ": " + e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
