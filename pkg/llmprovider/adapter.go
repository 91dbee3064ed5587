package llmprovider

import (
	"context"
	"fmt"

	"desktop-assistant/pkg/gemini"
	"desktop-assistant/pkg/groq"
	"desktop-assistant/pkg/ollama"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *GroqAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]groq.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, groq.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, groq.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.GenerateContent(ctx, &groq.Request{
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, wrapErr("groq", err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: "groq", Err: fmt.Errorf("empty response")}
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "groq",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// Available reports true once the client is initialized; the API itself is
// only probed by actually generating.
func (a *GroqAdapter) Available(ctx context.Context) bool {
	return a.client != nil
}

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *GeminiAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, wrapErr("gemini", err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Available reports true once the client is initialized
func (a *GeminiAdapter) Available(ctx context.Context) bool {
	return a.client != nil
}

// OllamaAdapter adapts pkg/ollama to the llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *OllamaAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.Request{
		Prompt:      req.Prompt,
		System:      req.System,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		JSONFormat:  req.JSONFormat,
	}
	if req.CodeTask {
		ollamaReq.Model = a.client.CodeModel()
	}

	resp, err := a.client.Generate(ctx, ollamaReq)
	if err != nil {
		return nil, wrapErr("ollama", err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "ollama",
		ModelName:    resp.Model,
	}, nil
}

// Name returns the provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns the model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// Available pings the local model server
func (a *OllamaAdapter) Available(ctx context.Context) bool {
	return a.client.IsAvailable(ctx)
}
