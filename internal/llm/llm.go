// Package llm selects the summarization backend.
package llm

import (
	"context"
	"fmt"
)

// Completer produces a completion for a single user prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// New returns the Completer for the configured backend.
func New(backend string, openaiClient Completer, geminiAPIKey, geminiModel string) (Completer, error) {
	switch backend {
	case "openai", "":
		return openaiClient, nil
	case "gemini":
		return NewGemini(geminiAPIKey, geminiModel), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q (supported: openai, gemini)", backend)
	}
}
