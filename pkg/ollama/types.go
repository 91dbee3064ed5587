package ollama

import "net/http"

// Config holds Ollama client configuration
type Config struct {
	BaseURL    string
	Model      string
	CodeModel  string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.CodeModel == "" {
		c.CodeModel = DefaultCodeModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	baseURL    string
	model      string
	codeModel  string
	httpClient *http.Client
}

// Request represents a completion request
type Request struct {
	Model       string
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
	// JSONFormat asks the server for a schema-constrained JSON response
	JSONFormat bool
}

// Response represents a completion response
type Response struct {
	Text  string
	Model string
}

// generatePayload is the wire format of POST /api/generate
type generatePayload struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Format  string          `json:"format,omitempty"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// generateResult is the wire format of the /api/generate response
type generateResult struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// tagsResult is the wire format of GET /api/tags
type tagsResult struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}
