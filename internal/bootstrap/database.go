package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/config"
	"github.com/brandsight/signal-engine/internal/database"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/vocabulary"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB           *sqlx.DB
	Competitors  *database.CompetitorsRepository
	PatternRules *database.PatternRulesRepository
}

// SetupDatabase opens the configured registry store and builds repositories.
func SetupDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*DatabaseComponents, error) {
	log.Info("connecting to registry store",
		logger.String("driver", cfg.Database.Driver),
		logger.String("database", cfg.Database.Database),
	)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect registry store: %w", err)
	}

	if err := database.EnsureSchema(ctx, db, cfg.Database.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("registry store connected")

	return &DatabaseComponents{
		DB:           db,
		Competitors:  database.NewCompetitorsRepository(db),
		PatternRules: database.NewPatternRulesRepository(db),
	}, nil
}

// LoadRegistry builds the competitor registry from stored entries.
func LoadRegistry(ctx context.Context, repo *database.CompetitorsRepository, log logger.Logger) (*competitors.Registry, error) {
	registry := competitors.NewRegistry(log)

	entries, err := repo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load competitors: %w", err)
	}
	registry.RegisterAll(entries)

	log.Info("competitor registry loaded", logger.Int("competitors", len(entries)))
	return registry, nil
}

// ExtendVocabulary applies the stored pattern rules to the extractor's
// built-in industry and region tables. Must run before the extractor sees
// concurrent traffic.
func ExtendVocabulary(ctx context.Context, repo *database.PatternRulesRepository, extractor *vocabulary.Extractor, log logger.Logger) error {
	industry, err := repo.ListEnabled(ctx, "industry")
	if err != nil {
		return fmt.Errorf("load industry rules: %w", err)
	}
	extractor.ExtendIndustryTerms(industry)

	region, err := repo.ListEnabled(ctx, "region")
	if err != nil {
		return fmt.Errorf("load region rules: %w", err)
	}
	extractor.ExtendRegionTerms(region)

	log.Info("vocabulary tables extended",
		logger.Int("industry_buckets", len(industry)),
		logger.Int("region_buckets", len(region)),
	)
	return nil
}
