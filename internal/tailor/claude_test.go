package tailor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClaudeClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("expected api key header, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("expected anthropic-version header")
		}
		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Model != "claude-test" || len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("unexpected request %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"SUMMARY\n"},{"type":"text","text":"Tailored"}]}`))
	}))
	defer srv.Close()

	c := NewClaudeClient("test-key", "claude-test", srv.URL)
	defer c.Close()

	got, err := c.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SUMMARY\nTailored" {
		t.Errorf("expected joined text blocks, got %q", got)
	}
}

func TestClaudeClient_StatusHandling(t *testing.T) {
	tests := []struct {
		status    int
		body      string
		retryable bool
		contains  string
	}{
		{http.StatusTooManyRequests, `{"error":{"type":"rate_limit_error"}}`, true, "429"},
		{529, `overloaded`, true, "529"},
		{http.StatusBadRequest, `{"error":{"type":"invalid_request_error"}}`, false, "status 400"},
		{http.StatusOK, `{"error":{"type":"api_error","message":"boom"}}`, false, "boom"},
		{http.StatusOK, `{"content":[]}`, false, "empty response"},
		{http.StatusOK, `not json`, false, "decode response"},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(tt.body))
		}))

		c := NewClaudeClient("k", "m", srv.URL)
		_, err := c.Complete(context.Background(), "p")
		srv.Close()

		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if IsRetryable(err) != tt.retryable {
			t.Errorf("status %d: expected retryable=%v, got %v", tt.status, tt.retryable, err)
		}
		if !strings.Contains(err.Error(), tt.contains) {
			t.Errorf("status %d: expected error to contain %q, got %q", tt.status, tt.contains, err.Error())
		}
	}
}

func TestNewClaudeClient_DefaultURL(t *testing.T) {
	c := NewClaudeClient("k", "m", "")
	if c.url != defaultAnthropicURL {
		t.Errorf("expected default url, got %q", c.url)
	}
	if c.Name() != "anthropic" || c.Model() != "m" {
		t.Errorf("unexpected identity %s/%s", c.Name(), c.Model())
	}
}
