package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/SymptomAnalyzer/internal/analyzer"
	"github.com/Skufu/SymptomAnalyzer/internal/config"
	"github.com/Skufu/SymptomAnalyzer/internal/database"
	"github.com/Skufu/SymptomAnalyzer/internal/gemini"
	"github.com/Skufu/SymptomAnalyzer/internal/logging"
	"github.com/Skufu/SymptomAnalyzer/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}

	ctx := context.Background()
	deps := server.Deps{Logger: logger, MaxBodyBytes: cfg.MaxBodyBytes}

	if cfg.EnableDB {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		deps.DB = pool
	}

	client, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		return err
	}
	deps.Analyzer, err = analyzer.New(client, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("server listening", "addr", srv.Addr, "model", client.Model(), "db", cfg.EnableDB)
	return waitForShutdown(srv, logger, errCh)
}

func waitForShutdown(srv *http.Server, logger *slog.Logger, errCh <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", "err", err)
	}
	return nil
}
