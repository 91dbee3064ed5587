package ollama

import "context"

// IOllama defines the interface for the local Ollama client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate sends a completion request to the local model server
	Generate(ctx context.Context, req *Request) (*Response, error)

	// IsAvailable reports whether the model server is reachable
	IsAvailable(ctx context.Context) bool

	// ListModels returns the names of locally installed models
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the default general-purpose model name
	Model() string

	// CodeModel returns the model used for code generation
	CodeModel() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
