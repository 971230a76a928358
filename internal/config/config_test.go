package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "TAILOR_PROVIDER", "TAILOR_TIMEOUT", "TAILOR_MAX_RETRIES", "MAX_UPLOAD_BYTES", "PDF_FALLBACK_PDFTOTEXT"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %q", cfg.Port)
	}
	if cfg.TailorProvider != ProviderAnthropic {
		t.Errorf("expected anthropic provider, got %q", cfg.TailorProvider)
	}
	if cfg.TailorTimeout != 2*time.Minute {
		t.Errorf("expected 2m timeout, got %v", cfg.TailorTimeout)
	}
	if cfg.TailorMaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.TailorMaxRetries)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("expected 10MB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TAILOR_PROVIDER", "Gemini")
	t.Setenv("TAILOR_TIMEOUT", "45s")
	t.Setenv("TAILOR_MAX_RETRIES", "-1")
	t.Setenv("MAX_CONTENT_BYTES", "2048")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.TailorProvider != ProviderGemini {
		t.Errorf("expected provider lower-cased to gemini, got %q", cfg.TailorProvider)
	}
	if cfg.TailorTimeout != 45*time.Second {
		t.Errorf("expected 45s, got %v", cfg.TailorTimeout)
	}
	if cfg.TailorMaxRetries != 3 {
		t.Errorf("expected non-positive retries reset to 3, got %d", cfg.TailorMaxRetries)
	}
	if cfg.MaxContentBytes != 2048 {
		t.Errorf("expected 2048, got %d", cfg.MaxContentBytes)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected fallback disabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic ok", Config{TailorProvider: ProviderAnthropic, AnthropicAPIKey: "k"}, ""},
		{"anthropic missing key", Config{TailorProvider: ProviderAnthropic}, "ANTHROPIC_API_KEY"},
		{"gemini ok", Config{TailorProvider: ProviderGemini, GeminiAPIKey: "k"}, ""},
		{"gemini missing key", Config{TailorProvider: ProviderGemini, AnthropicAPIKey: "k"}, "GEMINI_API_KEY"},
		{"unknown provider", Config{TailorProvider: "openai"}, "TAILOR_PROVIDER"},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: expected error mentioning %s, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestValidate_MissingKeyIsDistinct(t *testing.T) {
	err := Config{TailorProvider: ProviderGemini}.Validate()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	err = Config{TailorProvider: "openai", AnthropicAPIKey: "k"}.Validate()
	if err == nil || errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected a provider error, got %v", err)
	}
}
