// Package llm provides the OpenAI-compatible client used by the
// enrichment phase, plus the utilities for pulling JSON out of free-text
// model responses.
package llm

import "context"

// Client is the interface the aggregation assembler depends on. Use it
// for dependency injection so tests can substitute MockClient instead of
// patching process-wide state.
type Client interface {
	// GenerateResponse sends one chat completion request and returns the
	// raw response text. One attempt, no retries; enrichment callers
	// fall back on failure.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Ensure OpenAIClient implements Client at compile time.
var _ Client = (*OpenAIClient)(nil)
