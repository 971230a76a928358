package tailor

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func fakeGemini(resp *genai.GenerateContentResponse, err error) *GeminiClient {
	return &GeminiClient{
		model: "gemini-test",
		generate: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return resp, err
		},
	}
}

func TestGeminiClient_JoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: " SUMMARY "},
				nil,
				{Text: "Tailored"},
			}}},
		},
	}
	got, err := fakeGemini(resp, nil).Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SUMMARY\nTailored" {
		t.Errorf("expected joined parts, got %q", got)
	}
}

func TestGeminiClient_EmptyResponse(t *testing.T) {
	_, err := fakeGemini(&genai.GenerateContentResponse{}, nil).Complete(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGeminiClient_RetryableAPIError(t *testing.T) {
	_, err := fakeGemini(nil, genai.APIError{Code: 503, Message: "unavailable"}).Complete(context.Background(), "p")
	if !IsRetryable(err) {
		t.Errorf("expected 503 to be retryable, got %v", err)
	}

	_, err = fakeGemini(nil, genai.APIError{Code: 400, Message: "bad"}).Complete(context.Background(), "p")
	if err == nil || IsRetryable(err) {
		t.Errorf("expected permanent error for 400, got %v", err)
	}

	_, err = fakeGemini(nil, errors.New("dial failed")).Complete(context.Background(), "p")
	if err == nil || IsRetryable(err) {
		t.Errorf("expected permanent error for transport failure, got %v", err)
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	if _, err := NewGeminiClient(context.Background(), "  ", ""); err == nil {
		t.Error("expected error for missing api key")
	}
}
