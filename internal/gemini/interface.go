package gemini

import "context"

// Generator is the prompt-in, text-out seam around the model provider.
// Tests substitute a deterministic stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var _ Generator = (*Client)(nil)
