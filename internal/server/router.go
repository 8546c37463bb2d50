package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Skufu/SymptomAnalyzer/internal/analyzer"
	"github.com/Skufu/SymptomAnalyzer/internal/database"
)

const defaultMaxBodyBytes = 1 << 20

type Deps struct {
	Analyzer *analyzer.Analyzer
	// DB is optional; nil reports the database as disabled on /readyz.
	DB           database.HealthChecker
	Logger       *slog.Logger
	MaxBodyBytes int64
}

// NewRouter wires middleware and routes.
func NewRouter(deps Deps) *gin.Engine {
	useJSONFieldNames()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	router := gin.New()
	router.Use(
		RequestID(),
		RequestLogger(logger),
		gin.Recovery(),
		limitBodySize(maxBody),
		gzip.Gzip(gzip.DefaultCompression),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/health", health)
	router.GET("/readyz", readiness(deps.DB))

	h := &analysisHandler{analyzer: deps.Analyzer}
	analyze := router.Group("/analyze")
	analyze.POST("/traditional", h.traditional)
	analyze.POST("/body-based", h.bodyBased)

	return router
}
