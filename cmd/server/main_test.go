package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Skufu/SymptomAnalyzer/internal/config"
	"github.com/Skufu/SymptomAnalyzer/internal/logging"
)

func TestRunFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if err := run(); !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestWaitForShutdownReturnsServeError(t *testing.T) {
	errCh := make(chan error, 1)
	errCh <- errors.New("address already in use")

	err := waitForShutdown(&http.Server{}, logging.Discard(), errCh)
	if err == nil || err.Error() != "address already in use" {
		t.Fatalf("expected serve error, got %v", err)
	}
}
