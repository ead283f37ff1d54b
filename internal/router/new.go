package router

import (
	"context"

	"butler-assistant/pkg/log"
)

// Router classifies a raw command.
type Router interface {
	Classify(ctx context.Context, command string) Output
}

// KeywordRouter classifies commands by trigger keywords.
type KeywordRouter struct {
	l log.Logger
}

var _ Router = (*KeywordRouter)(nil)

func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
