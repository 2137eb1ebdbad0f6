// Package config loads signal-engine configuration from the environment,
// with optional .env file support and sane defaults for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default configuration values.
const (
	defaultServiceName     = "signal-engine"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultConcurrency     = 10
	defaultBatchSize       = 100
	defaultRatePerSec      = 50
	defaultQueryBudget     = 40
	defaultFuzzyThreshold  = 0.7
	defaultDBDriver        = "postgres"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "signal_engine"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultSQLitePath      = "signal_engine.db"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultShutdownTimeout = 15 * time.Second
)

// Config holds all configuration for the signal engine.
type Config struct {
	Service  ServiceConfig
	Engine   EngineConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string
	Version         string
	Port            int
	Debug           bool
	ShutdownTimeout time.Duration
}

// EngineConfig holds tunables for the classification and generation paths.
type EngineConfig struct {
	Concurrency    int
	BatchSize      int
	RatePerSecond  int
	QueryBudget    int
	FuzzyThreshold float64
}

// DatabaseConfig holds registry-store configuration. Driver is "postgres"
// for deployments or "sqlite3" for local runs.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// DSN builds the driver-appropriate connection string.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite3" {
		return d.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
}

// Load reads configuration from the environment. A .env file at the given
// path is loaded first when present; a missing file is not an error.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading env file %s: %w", envPath, err)
		}
	}

	cfg := &Config{
		Service: ServiceConfig{
			Name:            envString("SERVICE_NAME", defaultServiceName),
			Version:         envString("SERVICE_VERSION", defaultServiceVersion),
			Port:            envInt("SERVICE_PORT", defaultServicePort),
			Debug:           envBool("APP_DEBUG", false),
			ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Engine: EngineConfig{
			Concurrency:    envInt("ENGINE_CONCURRENCY", defaultConcurrency),
			BatchSize:      envInt("ENGINE_BATCH_SIZE", defaultBatchSize),
			RatePerSecond:  envInt("ENGINE_RATE_PER_SECOND", defaultRatePerSec),
			QueryBudget:    envInt("ENGINE_QUERY_BUDGET", defaultQueryBudget),
			FuzzyThreshold: envFloat("ENGINE_FUZZY_THRESHOLD", defaultFuzzyThreshold),
		},
		Database: DatabaseConfig{
			Driver:          envString("DB_DRIVER", defaultDBDriver),
			Host:            envString("POSTGRES_HOST", defaultDBHost),
			Port:            envInt("POSTGRES_PORT", defaultDBPort),
			User:            envString("POSTGRES_USER", defaultDBUser),
			Password:        os.Getenv("POSTGRES_PASSWORD"),
			Database:        envString("POSTGRES_DB", defaultDBName),
			SSLMode:         envString("POSTGRES_SSLMODE", defaultDBSSLMode),
			SQLitePath:      envString("SQLITE_PATH", defaultSQLitePath),
			MaxConnections:  envInt("DB_MAX_CONNECTIONS", defaultDBMaxConns),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNECTIONS", defaultDBMaxIdleConns),
			ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Logging: LoggingConfig{
			Level:  envString("LOG_LEVEL", defaultLogLevel),
			Format: envString("LOG_FORMAT", defaultLogFormat),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Service.Port <= 0 || c.Service.Port > 65535 {
		return fmt.Errorf("invalid service port %d", c.Service.Port)
	}
	if c.Engine.Concurrency <= 0 {
		return fmt.Errorf("engine concurrency must be positive, got %d", c.Engine.Concurrency)
	}
	if c.Engine.FuzzyThreshold <= 0 || c.Engine.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy threshold must be in (0,1], got %v", c.Engine.FuzzyThreshold)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite3" {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
