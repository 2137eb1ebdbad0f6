package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema DDL per driver. The column set is identical; only the
// auto-increment spelling differs.
var schemaStatements = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS competitors (
			canonical_name TEXT PRIMARY KEY,
			aliases        TEXT NOT NULL DEFAULT '',
			domain         TEXT NOT NULL DEFAULT '',
			category       TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS pattern_rules (
			id         BIGSERIAL PRIMARY KEY,
			rule_table TEXT NOT NULL,
			rule_key   TEXT NOT NULL,
			terms      TEXT NOT NULL DEFAULT '',
			enabled    BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	},
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS competitors (
			canonical_name TEXT PRIMARY KEY,
			aliases        TEXT NOT NULL DEFAULT '',
			domain         TEXT NOT NULL DEFAULT '',
			category       TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS pattern_rules (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			rule_table TEXT NOT NULL,
			rule_key   TEXT NOT NULL,
			terms      TEXT NOT NULL DEFAULT '',
			enabled    BOOLEAN NOT NULL DEFAULT 1
		)`,
	},
}

// EnsureSchema creates the registry-store tables when they do not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	statements, ok := schemaStatements[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
