package database

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ HealthChecker = (*pgxpool.Pool)(nil)

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz")
	if err == nil {
		t.Fatal("expected error for malformed url")
	}
	if !strings.Contains(err.Error(), "parse db url") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
