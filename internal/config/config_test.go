package config

import (
	"errors"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ENABLE_DB", "false")
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("ENABLE_DB", "true")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"PORT", "GEMINI_MODEL", "GEMINI_TIMEOUT", "MAX_BODY_BYTES", "LOG_LEVEL", "LOG_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout != 0 {
		t.Fatalf("expected no provider timeout, got %s", cfg.Gemini.Timeout)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected 1MB body limit, got %d", cfg.MaxBodyBytes)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.LogDir != "" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT", "45s")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Gemini.Timeout != 45*time.Second {
		t.Fatalf("expected 45s timeout, got %s", cfg.Gemini.Timeout)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Fatalf("expected 2048, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"GEMINI_TIMEOUT", "soon"},
		{"GEMINI_TIMEOUT", "-1s"},
		{"MAX_BODY_BYTES", "0"},
		{"LOG_MAX_SIZE_MB", "big"},
		{"LOG_COMPRESS", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
