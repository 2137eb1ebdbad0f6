package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

func testProfile() *domain.BrandProfile {
	return &domain.BrandProfile{
		EmotionalDrivers:  []string{"confidence in every decision", "fear of falling behind competitors"},
		FunctionalDrivers: []string{"reduce claims processing time"},
		Transformation: domain.Transformation{
			Before: "drowning in manual claims paperwork",
			After:  "claims resolved in hours not weeks",
		},
		KeyBenefit: domain.KeyBenefit{
			Statement: "settle claims three times faster",
		},
		CustomerQuotes: []domain.CustomerQuote{
			{Text: "I finally feel in control of our pipeline", EmotionalWeight: 70},
			{Text: "we kept losing paperwork between departments", EmotionalWeight: 30},
		},
	}
}

func TestExtractTriggers_SourceMapping(t *testing.T) {
	triggers := ExtractTriggers(testProfile())

	bySource := make(map[string][]domain.CustomerTrigger)
	for _, tr := range triggers {
		bySource[tr.Source] = append(bySource[tr.Source], tr)
	}

	require.Len(t, bySource["emotional_driver"], 2)
	assert.Equal(t, domain.TriggerDesire, bySource["emotional_driver"][0].Type)
	assert.Equal(t, domain.TriggerFear, bySource["emotional_driver"][1].Type,
		"driver mentioning fear must map to the fear type")
	assert.Equal(t, 75, bySource["emotional_driver"][0].Intensity)

	require.Len(t, bySource["functional_driver"], 1)
	assert.Equal(t, domain.TriggerPainPoint, bySource["functional_driver"][0].Type)
	assert.Equal(t, 70, bySource["functional_driver"][0].Intensity)

	require.Len(t, bySource["transformation_before"], 1)
	assert.Equal(t, domain.TriggerFrustration, bySource["transformation_before"][0].Type)
	assert.Equal(t, 80, bySource["transformation_before"][0].Intensity)

	require.Len(t, bySource["transformation_after"], 1)
	assert.Equal(t, domain.TriggerAspiration, bySource["transformation_after"][0].Type)
	assert.Equal(t, 85, bySource["transformation_after"][0].Intensity)

	require.Len(t, bySource["key_benefit"], 1)
	assert.Equal(t, domain.TriggerAspiration, bySource["key_benefit"][0].Type)
	assert.Equal(t, 90, bySource["key_benefit"][0].Intensity)
}

func TestExtractTriggers_QuoteWeighting(t *testing.T) {
	triggers := ExtractTriggers(testProfile())

	var quotes []domain.CustomerTrigger
	for _, tr := range triggers {
		if tr.Source == "customer_quote" {
			quotes = append(quotes, tr)
		}
	}
	require.Len(t, quotes, 2)

	// Weight 70 is over the emotional threshold: desire at 70+20.
	assert.Equal(t, domain.TriggerDesire, quotes[0].Type)
	assert.Equal(t, 90, quotes[0].Intensity)

	// Weight 30 is under the threshold: pain point at 30+20.
	assert.Equal(t, domain.TriggerPainPoint, quotes[1].Type)
	assert.Equal(t, 50, quotes[1].Intensity)
}

func TestExtractTriggers_IntensityCapped(t *testing.T) {
	triggers := ExtractTriggers(&domain.BrandProfile{
		CustomerQuotes: []domain.CustomerQuote{{Text: "life changing", EmotionalWeight: 95}},
	})
	require.Len(t, triggers, 1)
	assert.Equal(t, 100, triggers[0].Intensity)
}

func TestExtractTriggers_EmptyProfile(t *testing.T) {
	assert.Empty(t, ExtractTriggers(&domain.BrandProfile{}))
}

func TestMatchStrength_ZeroWithoutConnectingKeywords(t *testing.T) {
	m := NewMatcher(logger.NewNop())

	match := m.MatchStrength(
		domain.Trend{Title: "Quantum computing investment surges"},
		domain.CustomerTrigger{Statement: "drowning in manual claims paperwork", Type: domain.TriggerFrustration, Intensity: 80},
	)

	assert.Equal(t, 0, match.Strength)
	assert.Empty(t, match.ConnectingKeywords)
}

func TestMatchStrength_BoundsAndComposition(t *testing.T) {
	m := NewMatcher(logger.NewNop())

	trend := domain.Trend{
		Title:          "Insurers race to automate claims processing",
		Description:    "Carriers are racing to reduce claims processing costs with automation",
		PrimaryTrigger: "pain",
		Validated:      true,
	}
	trigger := domain.CustomerTrigger{
		Statement: "reduce claims processing costs",
		Type:      domain.TriggerPainPoint,
		Intensity: 70,
	}

	match := m.MatchStrength(trend, trigger)

	// Full token overlap: 60 + type 20 + intensity 7 + validation 10 = 97.
	assert.Equal(t, 97, match.Strength)
	assert.Contains(t, match.ConnectingKeywords, "claims")
	assert.Contains(t, match.ConnectingKeywords, "claims processing",
		"adjacent token pairs count as connecting phrases")
}

func TestMatchStrength_AlwaysInRange(t *testing.T) {
	m := NewMatcher(logger.NewNop())
	trends := []domain.Trend{
		{Title: "claims automation", PrimaryTrigger: "pain", Validated: true},
		{Title: "unrelated astronomy news"},
		{Title: ""},
	}
	triggers := ExtractTriggers(testProfile())

	for _, trend := range trends {
		for _, trigger := range triggers {
			match := m.MatchStrength(trend, trigger)
			assert.GreaterOrEqual(t, match.Strength, 0)
			assert.LessOrEqual(t, match.Strength, 100)
		}
	}
}

func TestMatchTrends_OrderingAndContentReady(t *testing.T) {
	m := NewMatcher(logger.NewNop())

	trends := []domain.Trend{
		{ID: "weak", Title: "manual paperwork goes digital", Priority: 90},
		{ID: "strong", Title: "reduce claims processing costs now", PrimaryTrigger: "pain", Validated: true, Priority: 10},
		{ID: "none", Title: "celebrity chef opens restaurant", Priority: 100},
	}
	triggers := []domain.CustomerTrigger{
		{Statement: "reduce claims processing costs", Type: domain.TriggerPainPoint, Intensity: 70},
		{Statement: "drowning in manual claims paperwork", Type: domain.TriggerFrustration, Intensity: 80},
	}

	results := m.MatchTrends(trends, triggers)
	require.Len(t, results, 3)

	assert.Equal(t, "strong", results[0].Trend.ID)
	assert.True(t, results[0].ContentReady)
	assert.NotEmpty(t, results[0].ContentAngles)

	// Retained but below the content threshold: 2/4 overlap plus the
	// intensity bonus lands at 38.
	assert.Equal(t, "weak", results[1].Trend.ID)
	assert.False(t, results[1].ContentReady)
	assert.NotEmpty(t, results[1].Matches)

	assert.Equal(t, "none", results[2].Trend.ID)
	assert.False(t, results[2].ContentReady)
	assert.Empty(t, results[2].Matches)
}

func TestMatchTrends_DiscardsWeakMatches(t *testing.T) {
	m := NewMatcher(logger.NewNop())

	// One shared token out of four trigger tokens: 60/4=15, no bonuses,
	// below the retention floor.
	results := m.MatchTrends(
		[]domain.Trend{{Title: "paperwork"}},
		[]domain.CustomerTrigger{{
			Statement: "drowning manual claims paperwork chaos daily grind",
			Type:      domain.TriggerFrustration,
		}},
	)

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Matches)
	assert.Equal(t, 0, results[0].BestStrength)
}
