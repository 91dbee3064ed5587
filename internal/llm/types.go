package llm

import "time"

// Options tunes tier selection and per-call timeouts.
type Options struct {
	// Mode is the global routing mode: ModeAuto, ModeLocal, or ModeRemote.
	Mode string

	// RemoteTasks always route to the remote tier, LocalTasks to local.
	RemoteTasks []string
	LocalTasks  []string

	// LongPromptThreshold is the prompt size (chars) beyond which auto
	// mode prefers the remote tier.
	LongPromptThreshold int

	LocalTimeout  time.Duration
	RemoteTimeout time.Duration
}

// GenerateInput is a routed generation request.
type GenerateInput struct {
	Prompt      string
	TaskType    string
	System      string
	MaxTokens   int
	Temperature float64

	// ForceLocal pins the request to the local tier; no remote fallback
	// happens even when local fails. Wins over ForceRemote.
	ForceLocal bool

	// ForceRemote pins the primary tier to remote; local remains the
	// fallback when the remote tier is exhausted.
	ForceRemote bool
}

// GenerateResult is the routed generation outcome.
type GenerateResult struct {
	Success  bool
	Text     string
	Provider string
	Model    string

	// FallbackUsed is set when the answer came from the non-primary tier.
	FallbackUsed   bool
	FallbackReason string
}

// RoutingDecision records which tier was picked and why.
type RoutingDecision struct {
	UseRemote bool
	Reason    string
}

// TierStatus describes one tier for status reporting.
type TierStatus struct {
	Available bool     `json:"available"`
	Providers []string `json:"providers,omitempty"`
	Model     string   `json:"model,omitempty"`
}

// Status is the router snapshot exposed on the status endpoint.
type Status struct {
	Mode   string     `json:"mode"`
	Online bool       `json:"online"`
	Local  TierStatus `json:"local"`
	Remote TierStatus `json:"remote"`
}
