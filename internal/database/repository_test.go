package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/domain"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(context.Background(), db, "sqlite3"))
	return db
}

func TestCompetitorsRepository_RoundTrip(t *testing.T) {
	repo := NewCompetitorsRepository(testDB(t))
	ctx := context.Background()

	comp := domain.CompetitorAlias{
		CanonicalName: "Salesforce",
		Aliases:       []string{"sfdc", "sales force"},
		Domain:        "salesforce.com",
		Category:      "crm",
	}
	require.NoError(t, repo.Upsert(ctx, comp))

	got, err := repo.GetByCanonicalName(ctx, "Salesforce")
	require.NoError(t, err)
	assert.Equal(t, comp.Aliases, got.Aliases)
	assert.Equal(t, "salesforce.com", got.Domain)

	t.Run("upsert replaces", func(t *testing.T) {
		comp.Aliases = []string{"sfdc"}
		require.NoError(t, repo.Upsert(ctx, comp))

		got, err := repo.GetByCanonicalName(ctx, "Salesforce")
		require.NoError(t, err)
		assert.Equal(t, []string{"sfdc"}, got.Aliases)
	})

	t.Run("list filters by category", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, domain.CompetitorAlias{
			CanonicalName: "Zendesk",
			Category:      "support",
		}))

		crm, err := repo.List(ctx, "crm")
		require.NoError(t, err)
		require.Len(t, crm, 1)
		assert.Equal(t, "Salesforce", crm[0].CanonicalName)

		all, err := repo.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "Zendesk"))

		err := repo.Delete(ctx, "Zendesk")
		assert.ErrorIs(t, err, ErrCompetitorNotFound)

		_, err = repo.GetByCanonicalName(ctx, "Zendesk")
		assert.ErrorIs(t, err, ErrCompetitorNotFound)
	})
}

func TestPatternRulesRepository_ListEnabled(t *testing.T) {
	repo := NewPatternRulesRepository(testDB(t))
	ctx := context.Background()

	rules := []PatternRule{
		{Table: "industry", Key: "logistics", Terms: "freight|fleet|dispatch", Enabled: true},
		{Table: "industry", Key: "logistics", Terms: "last mile", Enabled: true},
		{Table: "industry", Key: "retail", Terms: "pos", Enabled: false},
		{Table: "region", Key: "canada", Terms: "prairies", Enabled: true},
	}
	for i := range rules {
		require.NoError(t, repo.Create(ctx, &rules[i]))
		assert.NotZero(t, rules[i].ID)
	}

	industry, err := repo.ListEnabled(ctx, "industry")
	require.NoError(t, err)
	assert.Equal(t, []string{"freight", "fleet", "dispatch", "last mile"}, industry["logistics"])
	assert.NotContains(t, industry, "retail")

	region, err := repo.ListEnabled(ctx, "region")
	require.NoError(t, err)
	assert.Equal(t, []string{"prairies"}, region["canada"])
}
