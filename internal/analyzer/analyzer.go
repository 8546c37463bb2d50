// Package analyzer runs one symptom analysis per call: build the prompt,
// invoke the model once, normalize its text into JSON.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Skufu/SymptomAnalyzer/internal/gemini"
	"github.com/Skufu/SymptomAnalyzer/internal/logging"
	"github.com/Skufu/SymptomAnalyzer/internal/normalize"
	"github.com/Skufu/SymptomAnalyzer/internal/prompt"
	"github.com/Skufu/SymptomAnalyzer/internal/symptom"
)

const (
	KindTraditional = "traditional"
	KindBodyBased   = "body-based"
)

// Analyzer holds no per-request state and is safe for concurrent use.
type Analyzer struct {
	gen    gemini.Generator
	logger *slog.Logger
}

func New(gen gemini.Generator, logger *slog.Logger) (*Analyzer, error) {
	if gen == nil {
		return nil, errors.New("generator is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{gen: gen, logger: logger}, nil
}

// Traditional analyzes a validated symptom list.
func (a *Analyzer) Traditional(ctx context.Context, req symptom.TraditionalRequest) (any, error) {
	return a.run(ctx, KindTraditional, prompt.Traditional(req))
}

// BodyBased analyzes a validated body-region report.
func (a *Analyzer) BodyBased(ctx context.Context, req symptom.BodyBasedRequest) (any, error) {
	return a.run(ctx, KindBodyBased, prompt.BodyBased(req))
}

func (a *Analyzer) run(ctx context.Context, kind, text string) (any, error) {
	log := logging.FromContext(ctx, a.logger).With("kind", kind)
	log.Debug("analysis prompt built", "prompt", text)

	start := time.Now()
	raw, err := a.gen.Generate(ctx, text)
	latency := time.Since(start)
	if err != nil {
		log.Error("model invocation failed", "latency", latency, "err", err)
		return nil, fmt.Errorf("invoke model: %w", err)
	}
	log.Debug("model response received", "raw", raw)

	res, err := normalize.Parse(raw)
	if err != nil {
		log.Warn("model output unparseable", "latency", latency, "bytes", len(raw))
		return nil, err
	}

	log.Info("analysis completed", "latency", latency, "cleaned", res.Cleaned)
	return res.Value, nil
}
