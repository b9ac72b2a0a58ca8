package ai

import (
	"context"
)

// TextGenerator defines the contract for the hosted generative model.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future,
// and for substituting a deterministic stub in tests.
type TextGenerator interface {
	// GenerateText sends a single prompt to the model and returns its text completion.
	// One call in, one completion out: no streaming, no tool-calling, no retries.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
