package bootstrap

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/brandsight/signal-engine/internal/api"
	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/config"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/processor"
	"github.com/brandsight/signal-engine/internal/queries"
	"github.com/brandsight/signal-engine/internal/reviews"
	"github.com/brandsight/signal-engine/internal/signals"
	"github.com/brandsight/signal-engine/internal/sourceverify"
	"github.com/brandsight/signal-engine/internal/telemetry"
	"github.com/brandsight/signal-engine/internal/trends"
	"github.com/brandsight/signal-engine/internal/vocabulary"
)

// HTTPComponents holds all components needed for the HTTP server.
type HTTPComponents struct {
	DB        *sqlx.DB
	Registry  *competitors.Registry
	Processor *processor.BatchProcessor
	Handler   *api.Handler
	Server    *api.Server
	Telemetry *telemetry.Provider
}

// NewHTTPComponents creates all components for the HTTP server. The registry
// store is optional: when it is unreachable the service starts with an empty
// competitor registry and the built-in vocabulary tables, and registrations
// live only in memory.
func NewHTTPComponents(ctx context.Context, cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	tel := telemetry.NewProvider()

	extractor := vocabulary.NewExtractor(log)
	registry := competitors.NewRegistry(log)

	var db *sqlx.DB
	dbComps, err := SetupDatabase(ctx, cfg, log)
	if err != nil {
		log.Warn("registry store unavailable, starting stateless", logger.Error(err))
	} else {
		db = dbComps.DB
		loaded, loadErr := LoadRegistry(ctx, dbComps.Competitors, log)
		if loadErr != nil {
			log.Warn("competitor load failed", logger.Error(loadErr))
		} else {
			registry = loaded
		}
		if extErr := ExtendVocabulary(ctx, dbComps.PatternRules, extractor, log); extErr != nil {
			log.Warn("pattern rule load failed", logger.Error(extErr))
		}
	}

	classifier := signals.NewClassifier(registry, log)
	limiter := processor.NewRateLimiter(cfg.Engine.RatePerSecond, 0, log)
	batchProcessor := processor.NewBatchProcessor(classifier, limiter, tel, cfg.Engine.Concurrency, log)
	log.Info("batch processor initialized",
		logger.Int("concurrency", cfg.Engine.Concurrency),
		logger.Int("rate_per_second", cfg.Engine.RatePerSecond),
	)

	verifier := sourceverify.NewVerifier(log)
	verifier.OnCacheHit(tel.RecordVerifyCacheHit)

	handler := api.NewHandler(
		cfg.Service.Name,
		cfg.Service.Version,
		api.Limits{
			FuzzyThreshold: cfg.Engine.FuzzyThreshold,
			MaxBatchSize:   cfg.Engine.BatchSize,
		},
		extractor,
		queries.NewGenerator(log, queries.WithBudget(cfg.Engine.QueryBudget)),
		reviews.NewAggregator(log),
		trends.NewMatcher(log),
		registry,
		classifier,
		batchProcessor,
		verifier,
		tel,
		log,
	)

	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, log)

	return &HTTPComponents{
		DB:        db,
		Registry:  registry,
		Processor: batchProcessor,
		Handler:   handler,
		Server:    server,
		Telemetry: tel,
	}, nil
}

// Close releases component resources.
func (c *HTTPComponents) Close() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

// ShutdownTimeout returns the graceful-shutdown budget for the HTTP server.
func ShutdownTimeout(cfg *config.Config) time.Duration {
	return cfg.Service.ShutdownTimeout
}
