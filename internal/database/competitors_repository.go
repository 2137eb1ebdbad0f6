package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/brandsight/signal-engine/internal/domain"
)

// ErrCompetitorNotFound is returned when a canonical name has no row.
var ErrCompetitorNotFound = errors.New("competitor not found")

const aliasSeparator = "|"

// competitorRow is the storage shape. Aliases are stored pipe-joined so the
// schema works identically on postgres and sqlite.
type competitorRow struct {
	CanonicalName string `db:"canonical_name"`
	Aliases       string `db:"aliases"`
	Domain        string `db:"domain"`
	Category      string `db:"category"`
}

func (row competitorRow) toDomain() domain.CompetitorAlias {
	comp := domain.CompetitorAlias{
		CanonicalName: row.CanonicalName,
		Domain:        row.Domain,
		Category:      row.Category,
	}
	if row.Aliases != "" {
		comp.Aliases = strings.Split(row.Aliases, aliasSeparator)
	}
	return comp
}

// CompetitorsRepository handles database operations for the competitor
// registry configuration.
type CompetitorsRepository struct {
	db *sqlx.DB
}

// NewCompetitorsRepository creates a new competitors repository.
func NewCompetitorsRepository(db *sqlx.DB) *CompetitorsRepository {
	return &CompetitorsRepository{db: db}
}

// Upsert inserts or replaces a competitor entry by canonical name.
func (r *CompetitorsRepository) Upsert(ctx context.Context, comp domain.CompetitorAlias) error {
	query := r.db.Rebind(`
		INSERT INTO competitors (canonical_name, aliases, domain, category)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (canonical_name)
		DO UPDATE SET aliases = excluded.aliases, domain = excluded.domain, category = excluded.category
	`)

	_, err := r.db.ExecContext(ctx, query,
		comp.CanonicalName,
		strings.Join(comp.Aliases, aliasSeparator),
		comp.Domain,
		comp.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert competitor %q: %w", comp.CanonicalName, err)
	}
	return nil
}

// GetByCanonicalName retrieves one competitor entry.
func (r *CompetitorsRepository) GetByCanonicalName(ctx context.Context, name string) (*domain.CompetitorAlias, error) {
	query := r.db.Rebind(`
		SELECT canonical_name, aliases, domain, category
		FROM competitors
		WHERE canonical_name = ?
	`)

	var row competitorRow
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrCompetitorNotFound, name)
		}
		return nil, fmt.Errorf("failed to get competitor %q: %w", name, err)
	}

	comp := row.toDomain()
	return &comp, nil
}

// List retrieves all competitor entries, optionally filtered by category.
func (r *CompetitorsRepository) List(ctx context.Context, category string) ([]domain.CompetitorAlias, error) {
	query := `SELECT canonical_name, aliases, domain, category FROM competitors`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY canonical_name`

	var rows []competitorRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}

	comps := make([]domain.CompetitorAlias, len(rows))
	for i, row := range rows {
		comps[i] = row.toDomain()
	}
	return comps, nil
}

// Delete removes a competitor entry by canonical name.
func (r *CompetitorsRepository) Delete(ctx context.Context, name string) error {
	query := r.db.Rebind(`DELETE FROM competitors WHERE canonical_name = ?`)

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete competitor %q: %w", name, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrCompetitorNotFound, name)
	}
	return nil
}
