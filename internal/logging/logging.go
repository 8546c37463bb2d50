package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Skufu/SymptomAnalyzer/internal/config"
)

const logFileName = "symptom-analyzer.log"

// NewLogger builds the process logger and installs it as the slog default.
// Source locations are attached only at debug level, where prompts and raw
// model output are also logged.
func NewLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	level := parseLevel(cfg.Level)

	w, path, err := openSink(cfg)
	if err != nil {
		return nil, err
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    path != "",
	}))
	slog.SetDefault(logger)

	if path != "" {
		logger.Info("file logging enabled", "path", path, "level", level.String())
	}
	return logger, nil
}

// openSink returns stdout, or stdout teed to a rotating file when LogDir is set.
func openSink(cfg config.LoggingConfig) (io.Writer, string, error) {
	dir := strings.TrimSpace(cfg.LogDir)
	if dir == "" {
		return os.Stdout, "", nil
	}

	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, "", fmt.Errorf("invalid log rotation: size=%dMB backups=%d age=%dd",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return io.MultiWriter(os.Stdout, file), file.Filename, nil
}

// Discard returns a logger that drops everything; handy for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
