package llm

import "context"

// MockClient is a configurable mock for testing enrichment logic. Set
// the function field to control behavior per test.
type MockClient struct {
	// GenerateResponseFunc is called when GenerateResponse is invoked.
	// If nil, returns empty string and nil error.
	GenerateResponseFunc func(ctx context.Context, prompt string, systemMessage string) (string, error)

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// GenerateResponseCalls counts invocations for verification.
	GenerateResponseCalls int

	// Prompts records every prompt sent, in order.
	Prompts []string
}

// NewMockClient creates a mock with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{ModelName: "mock-model"}
}

// GenerateResponse implements Client.
func (m *MockClient) GenerateResponse(ctx context.Context, prompt string, systemMessage string) (string, error) {
	m.GenerateResponseCalls++
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, prompt, systemMessage)
	}
	return "", nil
}

// Model implements Client.
func (m *MockClient) Model() string {
	return m.ModelName
}

var _ Client = (*MockClient)(nil)
