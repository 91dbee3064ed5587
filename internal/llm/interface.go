package llm

import "context"

// Prober reports whether the machine currently has internet reachability.
type Prober interface {
	Online(ctx context.Context) bool
}

// Router routes generation requests between the local model server and the
// remote provider chain, with cross-tier fallback.
type Router interface {
	// Generate routes the request to a tier and falls back to the other
	// tier when the primary one fails, unless the request is pinned local.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error)

	// GenerateCode is Generate specialized for code tasks; short prompts
	// run on the local code model, long ones on the remote tier. A
	// maxTokens of 0 leaves the provider default in place.
	GenerateCode(ctx context.Context, prompt, language string, maxTokens int) (*GenerateResult, error)

	// Decide returns the tier that Generate would pick for the input,
	// without calling any provider.
	Decide(ctx context.Context, input *GenerateInput) RoutingDecision

	// VerifyAvailability reports whether at least one tier can serve.
	VerifyAvailability(ctx context.Context) error

	// Status returns a snapshot of both tiers.
	Status(ctx context.Context) Status
}
