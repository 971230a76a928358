package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// ErrMissingAPIKey reports that the selected provider has no API key. The
// service still runs with tailoring disabled.
var ErrMissingAPIKey = errors.New("missing API key")

type Config struct {
	Port string

	// Tailoring backend
	TailorProvider  string
	AnthropicAPIKey string
	AnthropicModel  string
	AnthropicURL    string
	GeminiAPIKey    string
	GeminiModel     string

	TailorTimeout    time.Duration
	TailorMaxRetries int
	MaxPromptTokens  int
	LLMStatsWindow   time.Duration

	// Request limits
	MaxUploadBytes  int64
	MaxContentBytes int64

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		TailorProvider:  strings.ToLower(envOr("TAILOR_PROVIDER", ProviderAnthropic)),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		AnthropicURL:    envOr("ANTHROPIC_URL", "https://api.anthropic.com/v1/messages"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     envOr("GEMINI_MODEL", "gemini-2.5-pro"),

		TailorTimeout:    envDuration("TAILOR_TIMEOUT", 2*time.Minute),
		TailorMaxRetries: envInt("TAILOR_MAX_RETRIES", 3),
		MaxPromptTokens:  envInt("MAX_PROMPT_TOKENS", 24000),
		LLMStatsWindow:   envDuration("LLM_STATS_WINDOW", 1*time.Hour),

		MaxUploadBytes:  envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		MaxContentBytes: envInt64("MAX_CONTENT_BYTES", 1048576), // 1MB

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.TailorTimeout <= 0 {
		cfg.TailorTimeout = 2 * time.Minute
	}
	if cfg.TailorMaxRetries <= 0 {
		cfg.TailorMaxRetries = 3
	}
	if cfg.MaxPromptTokens <= 0 {
		cfg.MaxPromptTokens = 24000
	}
	if cfg.LLMStatsWindow <= 0 {
		cfg.LLMStatsWindow = 1 * time.Hour
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.MaxContentBytes <= 0 {
		cfg.MaxContentBytes = 1048576
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.TailorProvider {
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("%w: ANTHROPIC_API_KEY is required when TAILOR_PROVIDER=%s", ErrMissingAPIKey, ProviderAnthropic)
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY is required when TAILOR_PROVIDER=%s", ErrMissingAPIKey, ProviderGemini)
		}
	default:
		return fmt.Errorf("TAILOR_PROVIDER must be %q or %q, got %q", ProviderAnthropic, ProviderGemini, c.TailorProvider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
