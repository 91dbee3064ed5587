package intent

import (
	"desktop-assistant/internal/llm"
	"desktop-assistant/pkg/log"
)

type implResolver struct {
	l      log.Logger
	router llm.Router
	rules  []rule
}

var _ Resolver = &implResolver{}

// New creates a Resolver backed by the given router.
func New(l log.Logger, router llm.Router) Resolver {
	return &implResolver{
		l:      l,
		router: router,
		rules:  defaultRules(),
	}
}
