// Package llm abstracts the language model provider behind chat completion
// and embedding calls so the pipeline never touches provider SDK types.
package llm

import "context"

// CompletionRequest is a single chat exchange. The system prompt carries the
// task framing and the user prompt carries the composed request.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Client is implemented by provider adapters and by caching decorators.
type Client interface {
	// Complete returns the raw assistant text for the request.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Embed returns the embedding vector for the text.
	Embed(ctx context.Context, text string) ([]float32, error)
}
