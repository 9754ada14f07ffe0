package llm

import (
	"context"
	"testing"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	input := `{"black_pod": 32, "swollen_shoot": 18}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != input {
		t.Errorf("expected %q, got %q", input, result)
	}
}

func TestExtractJSON_PlainArray(t *testing.T) {
	input := `[{"date": "2023-07-01"}, {"date": "2023-07-02"}]`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != input {
		t.Errorf("expected %q, got %q", input, result)
	}
}

func TestExtractJSON_WrappedInProse(t *testing.T) {
	input := `Here is the disease report data you asked for:

{"black_pod": 32, "other": 11}

Let me know if you need different numbers.`

	expected := `{"black_pod": 32, "other": 11}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	input := "```json\n{\"pest_management\": 88}\n```"
	expected := `{"pest_management": 88}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestExtractJSON_NestedStructure(t *testing.T) {
	input := `{"monthly_yields": {"months": ["Jan", "Feb"], "2022": [880, 750]}}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != input {
		t.Errorf("expected %q, got %q", input, result)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	input := `{"message": "use {curly} braces carefully"} trailing prose`
	expected := `{"message": "use {curly} braces carefully"}`
	result, err := ExtractJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestExtractJSON_Malformed(t *testing.T) {
	if _, err := ExtractJSON(`{"black_pod": 32,`); err == nil {
		t.Error("expected error for unbalanced JSON")
	}
}

func TestExtractJSON_Empty(t *testing.T) {
	if _, err := ExtractJSON(""); err == nil {
		t.Error("expected error for empty response")
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	if _, err := ExtractJSON("I could not produce the data you asked for."); err == nil {
		t.Error("expected error for prose-only response")
	}
}

func TestParseJSONResponse(t *testing.T) {
	type report struct {
		BlackPod int `json:"black_pod"`
		Other    int `json:"other"`
	}

	result, err := ParseJSONResponse[report]("Sure! " + `{"black_pod": 32, "other": 11}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BlackPod != 32 || result.Other != 11 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestParseJSONResponse_TypeMismatch(t *testing.T) {
	type report struct {
		BlackPod []string `json:"black_pod"`
	}

	if _, err := ParseJSONResponse[report](`{"black_pod": 32}`); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestMockClientRecordsCalls(t *testing.T) {
	mock := NewMockClient()
	if _, err := mock.GenerateResponse(context.Background(), "prompt one", "system"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.GenerateResponseCalls != 1 {
		t.Errorf("expected 1 call, got %d", mock.GenerateResponseCalls)
	}
	if len(mock.Prompts) != 1 || mock.Prompts[0] != "prompt one" {
		t.Errorf("prompts not recorded: %v", mock.Prompts)
	}
}
