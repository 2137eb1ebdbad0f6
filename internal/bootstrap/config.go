// Package bootstrap wires configuration, logging, storage and the engine
// components for the service binaries.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/brandsight/signal-engine/internal/config"
	"github.com/brandsight/signal-engine/internal/logger"
)

const defaultEnvFile = ".env"

// LoadConfig loads configuration from the environment. ENV_FILE overrides
// the .env path; a missing file falls through to process environment and
// defaults.
func LoadConfig() (*config.Config, error) {
	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		envPath = defaultEnvFile
	}
	cfg, err := config.Load(envPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}
