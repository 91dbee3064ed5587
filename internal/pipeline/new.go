package pipeline

import (
	"sync/atomic"
	"time"

	"desktop-assistant/internal/capability"
	"desktop-assistant/internal/dispatch"
	"desktop-assistant/internal/intent"
	"desktop-assistant/internal/llm"
	"desktop-assistant/pkg/log"
)

type implPipeline struct {
	l          log.Logger
	resolver   intent.Resolver
	dispatcher dispatch.Dispatcher
	router     llm.Router
	speaker    capability.Speaker

	busy      atomic.Bool
	processed atomic.Uint64
	dropped   atomic.Uint64
	startedAt time.Time
}

var _ Pipeline = &implPipeline{}

// New creates a Pipeline. speaker may be nil when no speech surface exists.
func New(l log.Logger, resolver intent.Resolver, dispatcher dispatch.Dispatcher, router llm.Router, speaker capability.Speaker) Pipeline {
	return &implPipeline{
		l:          l,
		resolver:   resolver,
		dispatcher: dispatcher,
		router:     router,
		speaker:    speaker,
		startedAt:  time.Now(),
	}
}
