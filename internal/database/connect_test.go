package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/config"
)

func TestConnect_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:         "sqlite3",
		SQLitePath:     filepath.Join(t.TempDir(), "engine.db"),
		MaxConnections: 1,
		MaxIdleConns:   1,
	}

	db, err := Connect(context.Background(), cfg)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.PingContext(context.Background()))
}

func TestConnect_PingFailureReturnsError(t *testing.T) {
	// sqlx.Open is lazy; pointing sqlite at a directory that does not exist
	// only fails at ping time, which is the path that must release the
	// handle instead of leaking it.
	cfg := config.DatabaseConfig{
		Driver:         "sqlite3",
		SQLitePath:     filepath.Join(t.TempDir(), "missing", "engine.db"),
		MaxConnections: 1,
		MaxIdleConns:   1,
	}

	db, err := Connect(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, db)
}
