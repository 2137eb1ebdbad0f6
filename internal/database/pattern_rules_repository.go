package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// PatternRule is one startup-loadable extension to the built-in industry or
// region term tables. Table is "industry" or "region"; Key is the bucket
// name ("insurance", "canada"); Terms extend that bucket's pattern set.
type PatternRule struct {
	ID      int64  `db:"id"`
	Table   string `db:"rule_table"`
	Key     string `db:"rule_key"`
	Terms   string `db:"terms"`
	Enabled bool   `db:"enabled"`
}

// TermList splits the stored pipe-joined terms.
func (p PatternRule) TermList() []string {
	if p.Terms == "" {
		return nil
	}
	return strings.Split(p.Terms, aliasSeparator)
}

// PatternRulesRepository handles database operations for extensible pattern
// tables.
type PatternRulesRepository struct {
	db *sqlx.DB
}

// NewPatternRulesRepository creates a new pattern rules repository.
func NewPatternRulesRepository(db *sqlx.DB) *PatternRulesRepository {
	return &PatternRulesRepository{db: db}
}

// Create inserts a new pattern rule.
func (r *PatternRulesRepository) Create(ctx context.Context, rule *PatternRule) error {
	query := r.db.Rebind(`
		INSERT INTO pattern_rules (rule_table, rule_key, terms, enabled)
		VALUES (?, ?, ?, ?)
	`)

	result, err := r.db.ExecContext(ctx, query, rule.Table, rule.Key, rule.Terms, rule.Enabled)
	if err != nil {
		return fmt.Errorf("failed to create pattern rule: %w", err)
	}
	if id, err := result.LastInsertId(); err == nil {
		rule.ID = id
	}
	return nil
}

// ListEnabled retrieves the enabled rules for one table, keyed by bucket.
func (r *PatternRulesRepository) ListEnabled(ctx context.Context, table string) (map[string][]string, error) {
	query := r.db.Rebind(`
		SELECT id, rule_table, rule_key, terms, enabled
		FROM pattern_rules
		WHERE rule_table = ? AND enabled = ?
		ORDER BY id
	`)

	var rules []PatternRule
	if err := r.db.SelectContext(ctx, &rules, query, table, true); err != nil {
		return nil, fmt.Errorf("failed to list pattern rules for %q: %w", table, err)
	}

	byKey := make(map[string][]string, len(rules))
	for _, rule := range rules {
		byKey[rule.Key] = append(byKey[rule.Key], rule.TermList()...)
	}
	return byKey, nil
}
