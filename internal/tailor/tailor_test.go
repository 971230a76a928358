package tailor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/resumetailor/internal/config"
)

type fakeBackend struct {
	replies []string
	errs    []error
	prompts []string
	closed  bool
}

func (f *fakeBackend) Complete(ctx context.Context, prompt string) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	var reply string
	var err error
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return reply, err
}

func (f *fakeBackend) Name() string  { return "fake" }
func (f *fakeBackend) Model() string { return "fake-1" }
func (f *fakeBackend) Close() error  { f.closed = true; return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(b Backend, opts Options) *Service {
	s := NewService(b, NewLLMStats(time.Hour), opts, testLogger())
	s.backoff = func(int) time.Duration { return 0 }
	return s
}

func TestService_Tailor(t *testing.T) {
	b := &fakeBackend{replies: []string{"```\nSUMMARY\nGo engineer\n```"}}
	s := newTestService(b, Options{})

	got, err := s.Tailor(context.Background(), "old resume", "Go role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SUMMARY\nGo engineer" {
		t.Errorf("expected cleaned output, got %q", got)
	}
	if len(b.prompts) != 1 || !strings.Contains(b.prompts[0], "old resume") {
		t.Errorf("expected one prompt containing the resume, got %v", b.prompts)
	}
	if snap := s.Stats().Snapshot(); snap.Count != 1 || snap.Failures != 0 {
		t.Errorf("expected one successful sample, got %+v", snap)
	}
}

func TestService_MissingJobDescription(t *testing.T) {
	b := &fakeBackend{}
	s := newTestService(b, Options{})
	_, err := s.Tailor(context.Background(), "resume", "   ")
	if !errors.Is(err, ErrMissingJobDescription) {
		t.Errorf("expected ErrMissingJobDescription, got %v", err)
	}
	if len(b.prompts) != 0 {
		t.Error("expected no backend call")
	}
}

func TestService_PromptTooLarge(t *testing.T) {
	b := &fakeBackend{}
	s := newTestService(b, Options{MaxPromptTokens: 100})
	_, err := s.Tailor(context.Background(), strings.Repeat("word ", 500), "Go role")
	if !errors.Is(err, ErrPromptTooLarge) {
		t.Errorf("expected ErrPromptTooLarge, got %v", err)
	}
	if len(b.prompts) != 0 {
		t.Error("expected no backend call")
	}
}

func TestService_RetriesTransientErrors(t *testing.T) {
	b := &fakeBackend{
		replies: []string{"", "", "SKILLS\n• Go"},
		errs:    []error{&RetryableError{StatusCode: 529}, &RetryableError{StatusCode: 500}, nil},
	}
	s := newTestService(b, Options{MaxRetries: 3})

	got, err := s.Tailor(context.Background(), "", "Go role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SKILLS\n• Go" {
		t.Errorf("unexpected output %q", got)
	}
	if len(b.prompts) != 3 {
		t.Errorf("expected 3 attempts, got %d", len(b.prompts))
	}
	if snap := s.Stats().Snapshot(); snap.Count != 3 || snap.Failures != 2 {
		t.Errorf("expected 3 samples with 2 failures, got %+v", snap)
	}
}

func TestService_GivesUpAfterMaxRetries(t *testing.T) {
	retry := &RetryableError{StatusCode: 429}
	b := &fakeBackend{errs: []error{retry, retry, retry, retry}}
	s := newTestService(b, Options{MaxRetries: 2})

	_, err := s.Tailor(context.Background(), "r", "j")
	if !IsRetryable(err) {
		t.Errorf("expected last retryable error to surface, got %v", err)
	}
	if len(b.prompts) != 2 {
		t.Errorf("expected 2 attempts, got %d", len(b.prompts))
	}
}

func TestService_PermanentErrorNotRetried(t *testing.T) {
	b := &fakeBackend{errs: []error{errors.New("status 400")}}
	s := newTestService(b, Options{MaxRetries: 3})
	if _, err := s.Tailor(context.Background(), "r", "j"); err == nil {
		t.Fatal("expected error")
	}
	if len(b.prompts) != 1 {
		t.Errorf("expected a single attempt, got %d", len(b.prompts))
	}
}

func TestService_CancelledDuringBackoff(t *testing.T) {
	b := &fakeBackend{errs: []error{&RetryableError{StatusCode: 503}}}
	s := newTestService(b, Options{MaxRetries: 3})
	s.backoff = func(int) time.Duration { return time.Hour }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Tailor(ctx, "r", "j")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestService_EmptyOutput(t *testing.T) {
	b := &fakeBackend{replies: []string{"```\n```"}}
	s := newTestService(b, Options{})
	if _, err := s.Tailor(context.Background(), "r", "j"); !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("expected ErrEmptyOutput, got %v", err)
	}
}

func TestService_Close(t *testing.T) {
	b := &fakeBackend{}
	s := newTestService(b, Options{})
	if err := s.Close(); err != nil || !b.closed {
		t.Errorf("expected backend closed, err=%v", err)
	}
	if s.Model() != "fake-1" {
		t.Errorf("unexpected model %q", s.Model())
	}
}

func TestNewBackend(t *testing.T) {
	b, err := NewBackend(context.Background(), config.Config{
		TailorProvider:  config.ProviderAnthropic,
		AnthropicAPIKey: "k",
		AnthropicModel:  "claude-x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name() != "anthropic" || b.Model() != "claude-x" {
		t.Errorf("unexpected backend %s/%s", b.Name(), b.Model())
	}

	if _, err := NewBackend(context.Background(), config.Config{TailorProvider: "openai"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}
