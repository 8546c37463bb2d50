package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when GEMINI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment variables")

const (
	defaultPort         = "8000"
	defaultModel        = "gemini-2.5-flash"
	defaultMaxBodyBytes = 1 << 20
)

type Config struct {
	Port         string
	GinMode      string
	MaxBodyBytes int64
	DatabaseURL  string
	EnableDB     bool
	Gemini       GeminiConfig
	Logging      LoggingConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout of zero leaves the provider call unbounded.
	Timeout time.Duration
}

type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		GinMode:     getEnv("GIN_MODE", "release"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		EnableDB:    strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:   getEnv("GEMINI_MODEL", defaultModel),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			LogDir: os.Getenv("LOG_DIR"),
		},
	}

	if cfg.Gemini.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	var err error
	if cfg.MaxBodyBytes, err = getEnvInt64("MAX_BODY_BYTES", defaultMaxBodyBytes); err != nil {
		return nil, err
	}
	if cfg.Gemini.Timeout, err = getEnvDuration("GEMINI_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.Logging.MaxSizeMB, err = getEnvInt("LOG_MAX_SIZE_MB", 50); err != nil {
		return nil, err
	}
	if cfg.Logging.MaxBackups, err = getEnvInt("LOG_MAX_BACKUPS", 5); err != nil {
		return nil, err
	}
	if cfg.Logging.MaxAgeDays, err = getEnvInt("LOG_MAX_AGE_DAYS", 14); err != nil {
		return nil, err
	}
	if cfg.Logging.Compress, err = getEnvBool("LOG_COMPRESS", true); err != nil {
		return nil, err
	}

	return cfg, nil
}
