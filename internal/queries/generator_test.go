package queries

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
}

func insuranceProfile() *domain.BrandProfile {
	return &domain.BrandProfile{
		BrandName: "ClaimPilot AI",
		TargetCustomer: domain.TargetCustomer{
			Statement: "Claims managers at mid-size insurance carriers",
			Industry:  "insurance",
			Role:      "Claims Manager",
		},
		Transformation: domain.Transformation{
			Before: "Adjusters wasting hours retyping claim details",
			After:  "Claims settled faster with automated triage",
		},
		UniqueSolution: domain.UniqueSolution{
			Differentiators: []string{"Reduce claim cycle time"},
		},
		Catalog: []domain.CatalogCategory{
			{Name: "Products", Items: []domain.CatalogItem{
				{Name: "AI Claims Assistant", Description: "Automate claim intake and routing"},
			}},
		},
	}
}

func TestExtractUseCases(t *testing.T) {
	useCases := ExtractUseCases(insuranceProfile())

	require.NotEmpty(t, useCases)
	assert.LessOrEqual(t, len(useCases), 10)

	found := false
	for _, uc := range useCases {
		if strings.Contains(uc, "claim") || strings.Contains(uc, "assist") {
			found = true
		}
	}
	assert.True(t, found, "expected a use case referencing claims or assist, got %v", useCases)
}

func TestExtractOutcomes_InvertsBeforeProblems(t *testing.T) {
	outcomes := ExtractOutcomes(insuranceProfile())

	require.NotEmpty(t, outcomes)
	assert.Contains(t, outcomes, "save hours", "wasting hours should invert to save hours")
}

func TestExtractPersonas(t *testing.T) {
	personas := ExtractPersonas(insuranceProfile())

	require.NotEmpty(t, personas)
	assert.Contains(t, personas, "claims manager")
}

func TestExtractPersonas_RawRoleFallback(t *testing.T) {
	profile := &domain.BrandProfile{
		TargetCustomer: domain.TargetCustomer{Role: "Chief Happiness Wrangler"},
	}

	personas := ExtractPersonas(profile)
	assert.Contains(t, personas, "chief happiness wrangler")
}

func TestGenerate_UseCaseQueriesCarryIndustry(t *testing.T) {
	g := NewGenerator(logger.NewNop(), WithClock(fixedClock))

	batch := g.Generate(insuranceProfile())
	require.NotEmpty(t, batch)

	found := false
	for _, q := range batch {
		if q.Intent != domain.IntentUseCase {
			continue
		}
		if strings.Contains(q.Query, "insurance") &&
			(strings.Contains(q.Query, "claim") || strings.Contains(q.Query, "assist")) {
			found = true
		}
	}
	assert.True(t, found, "expected a use_case query containing industry and use-case term")
}

func TestGenerate_DedupAndOrdering(t *testing.T) {
	g := NewGenerator(logger.NewNop(), WithClock(fixedClock))

	batch := g.Generate(insuranceProfile())
	require.NotEmpty(t, batch)

	seen := make(map[string]struct{})
	for _, q := range batch {
		key := strings.ToLower(q.Query)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate query text %q", q.Query)
		seen[key] = struct{}{}
	}

	for i := 1; i < len(batch); i++ {
		assert.GreaterOrEqual(t, batch[i-1].Priority, batch[i].Priority,
			"batch must be sorted by priority descending")
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	g := NewGenerator(logger.NewNop(), WithClock(fixedClock))
	profile := insuranceProfile()

	assert.Equal(t, g.Generate(profile), g.Generate(profile))
}

func TestGenerate_YearSubstitution(t *testing.T) {
	g := NewGenerator(logger.NewNop(), WithClock(fixedClock))

	batch := g.Generate(insuranceProfile())

	found := false
	for _, q := range batch {
		if strings.Contains(q.Query, "2026") {
			found = true
		}
	}
	assert.True(t, found, "expected {year} substitution in at least one query")
}
