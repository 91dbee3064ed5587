package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateText sends a generation request and returns a response
	GenerateText(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq", "gemini", "ollama")
	Name() string

	// Model returns the model being used
	Model() string

	// Available reports whether the provider can currently serve requests
	Available(ctx context.Context) bool
}

// Request represents a normalized text generation request
type Request struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64

	// JSONFormat asks for a schema-constrained JSON response where the
	// provider supports it; providers without structured output ignore it.
	JSONFormat bool

	// CodeTask selects a code-tuned model where the provider has one.
	CodeTask bool
}

// Response represents a normalized text generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
