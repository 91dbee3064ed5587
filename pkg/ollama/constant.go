package ollama

import "time"

const (
	// DefaultBaseURL is the default Ollama API endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default general-purpose model
	DefaultModel = "llama3.2:3b"

	// DefaultCodeModel is the default model for code generation
	DefaultCodeModel = "codegemma:7b"

	// DefaultTimeout is the default HTTP client timeout.
	// Local inference is slow; the budget is deliberately generous.
	DefaultTimeout = 60 * time.Second

	// availabilityTimeout bounds the /api/tags reachability check
	availabilityTimeout = 5 * time.Second
)
