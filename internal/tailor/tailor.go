// Package tailor rewrites resume text for a job description using a hosted
// language model.
package tailor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/resumetailor/internal/config"
)

var (
	// ErrMissingJobDescription is returned when no job description is given.
	ErrMissingJobDescription = errors.New("job description is required")
	// ErrPromptTooLarge is returned when the estimated prompt size exceeds
	// the configured budget.
	ErrPromptTooLarge = errors.New("resume and job description are too long")
	// ErrEmptyOutput is returned when the model produced no usable text.
	ErrEmptyOutput = errors.New("model returned no resume text")
)

// Tailorer produces a tailored resume. An empty resume asks for a draft
// built from the job description alone.
type Tailorer interface {
	Tailor(ctx context.Context, resumeText, jobDescription string) (string, error)
}

// Backend is a single-turn text completion provider.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
	Close() error
}

// NewBackend builds the backend selected by cfg.TailorProvider.
func NewBackend(ctx context.Context, cfg config.Config) (Backend, error) {
	switch cfg.TailorProvider {
	case config.ProviderAnthropic:
		return NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicURL), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown tailor provider %q", cfg.TailorProvider)
	}
}

// Options bounds a Service.
type Options struct {
	Timeout         time.Duration
	MaxRetries      int
	MaxPromptTokens int
}

// Service implements Tailorer on top of a Backend with retries, a prompt
// size guard and latency stats.
type Service struct {
	backend Backend
	stats   *LLMStats
	opts    Options
	log     *slog.Logger
	backoff func(attempt int) time.Duration
}

func NewService(backend Backend, stats *LLMStats, opts Options, log *slog.Logger) *Service {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if stats == nil {
		stats = NewLLMStats(time.Hour)
	}
	return &Service{
		backend: backend,
		stats:   stats,
		opts:    opts,
		log:     log,
		backoff: Backoff,
	}
}

func (s *Service) Tailor(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return "", ErrMissingJobDescription
	}

	prompt := BuildPrompt(resumeText, jobDescription)
	tokens := EstimateTokens(prompt)
	if s.opts.MaxPromptTokens > 0 && tokens > s.opts.MaxPromptTokens {
		return "", fmt.Errorf("%w: about %d tokens, limit %d", ErrPromptTooLarge, tokens, s.opts.MaxPromptTokens)
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	log := s.log.With("provider", s.backend.Name(), "model", s.backend.Model())
	if flags := FlagInstructions(jobDescription + "\n" + resumeText); flags != nil {
		log.Warn("input contains instruction-like text", "phrases", flags)
	}

	var out string
	var lastErr error
	for attempt := range s.opts.MaxRetries {
		start := time.Now()
		out, lastErr = s.backend.Complete(ctx, prompt)
		elapsed := time.Since(start).Milliseconds()
		if lastErr != nil {
			s.stats.RecordFailure(elapsed)
		} else {
			s.stats.Record(elapsed)
		}

		if lastErr == nil || !IsRetryable(lastErr) || attempt == s.opts.MaxRetries-1 {
			break
		}
		log.Warn("retryable tailoring error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(s.backoff(attempt)):
		case <-ctx.Done():
			return "", fmt.Errorf("tailor: %w", ctx.Err())
		}
	}
	if lastErr != nil {
		return "", fmt.Errorf("tailor via %s: %w", s.backend.Name(), lastErr)
	}

	out = CleanOutput(out)
	if out == "" {
		return "", ErrEmptyOutput
	}
	log.Info("resume tailored",
		"mode", promptMode(resumeText),
		"prompt_tokens", tokens,
		"output_chars", len(out),
	)
	return out, nil
}

// Stats returns the rolling latency window.
func (s *Service) Stats() *LLMStats { return s.stats }

// Model names the backend model for reporting.
func (s *Service) Model() string { return s.backend.Model() }

// Close releases the backend.
func (s *Service) Close() error { return s.backend.Close() }

func promptMode(resumeText string) string {
	if strings.TrimSpace(resumeText) == "" {
		return "generate"
	}
	return "tailor"
}
