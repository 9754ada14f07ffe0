package llm

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewOpenAIClient(t *testing.T) {
	client, err := NewOpenAIClient(&Config{APIKey: "sk-test", Model: "gpt-4"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Model(); got != "gpt-4" {
		t.Errorf("expected model gpt-4, got %s", got)
	}
}

func TestNewOpenAIClient_MissingAPIKey(t *testing.T) {
	if _, err := NewOpenAIClient(&Config{Model: "gpt-4"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewOpenAIClient_MissingModel(t *testing.T) {
	if _, err := NewOpenAIClient(&Config{APIKey: "sk-test"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for missing model")
	}
}
