package model

// ExecutionResult is the uniform shape every capability handler returns.
// Success is the authoritative pass/fail signal; Message is human-facing.
// Data carries optional structured payload and is nil on failure unless a
// handler documents otherwise.
type ExecutionResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Failure builds a failed result with the given message.
func Failure(message string) ExecutionResult {
	return ExecutionResult{Success: false, Message: message}
}

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
