package llm

import (
	"time"

	"desktop-assistant/config"
	"desktop-assistant/pkg/llmprovider"
	"desktop-assistant/pkg/log"
)

type implRouter struct {
	l       log.Logger
	local   llmprovider.Provider
	remotes []llmprovider.Provider
	prober  Prober
	opts    Options
}

var _ Router = &implRouter{}

// New creates a Router over a local provider and a priority-ordered remote
// chain. Either tier may be nil/empty; routing degrades to the other one.
func New(l log.Logger, local llmprovider.Provider, remotes []llmprovider.Provider, prober Prober, opts Options) Router {
	if opts.Mode == "" {
		opts.Mode = ModeAuto
	}
	if opts.LongPromptThreshold <= 0 {
		opts.LongPromptThreshold = defaultLongPromptThreshold
	}
	if opts.LocalTimeout <= 0 {
		opts.LocalTimeout = defaultLocalTimeout
	}
	if opts.RemoteTimeout <= 0 {
		opts.RemoteTimeout = defaultRemoteTimeout
	}

	return &implRouter{
		l:       l,
		local:   local,
		remotes: remotes,
		prober:  prober,
		opts:    opts,
	}
}

// OptionsFromConfig builds router Options from the routing config section.
func OptionsFromConfig(cfg *config.LLMConfig) Options {
	return Options{
		Mode:                cfg.Mode,
		RemoteTasks:         cfg.Routing.RemoteTasks,
		LocalTasks:          cfg.Routing.LocalTasks,
		LongPromptThreshold: cfg.Routing.LongPromptThreshold,
		LocalTimeout:        parseDuration(cfg.Routing.LocalTimeout, defaultLocalTimeout),
		RemoteTimeout:       parseDuration(cfg.Routing.RemoteTimeout, defaultRemoteTimeout),
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
