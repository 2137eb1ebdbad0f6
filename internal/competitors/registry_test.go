package competitors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/fuzzy"
	"github.com/brandsight/signal-engine/internal/logger"
)

func crmRegistry() *Registry {
	r := NewRegistry(logger.NewNop())
	r.RegisterAll([]domain.CompetitorAlias{
		{CanonicalName: "Salesforce", Aliases: []string{"SFDC", "sales force"}, Domain: "salesforce.com"},
		{CanonicalName: "HubSpot", Aliases: []string{"hub spot"}, Domain: "hubspot.com"},
		{CanonicalName: "Pipedrive", Domain: "pipedrive.com"},
	})
	return r
}

func TestRegistry_Resolve(t *testing.T) {
	r := crmRegistry()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "Salesforce", "Salesforce"},
		{"alias", "sfdc", "Salesforce"},
		{"domain", "hubspot.com", "HubSpot"},
		{"case insensitive", "HUBSPOT", "HubSpot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := r.Resolve("unknown vendor")
	assert.False(t, ok)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	r := NewRegistry(logger.NewNop())
	r.Register(domain.CompetitorAlias{CanonicalName: "Acme CRM", Aliases: []string{"acme"}})
	r.Register(domain.CompetitorAlias{CanonicalName: "Acme Robotics", Aliases: []string{"acme"}})

	got, ok := r.Resolve("acme")
	require.True(t, ok)
	assert.Equal(t, "Acme Robotics", got, "overlapping alias must map to the last registration")
}

func TestRegistry_FuzzyResolve(t *testing.T) {
	r := crmRegistry()

	canonical, sim, ok := r.FuzzyResolve("salesfroce", fuzzy.DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "Salesforce", canonical)
	assert.GreaterOrEqual(t, sim, fuzzy.DefaultThreshold)

	_, _, ok = r.FuzzyResolve("", fuzzy.DefaultThreshold)
	assert.False(t, ok)

	_, _, ok = r.FuzzyResolve("zzzzzzzz", fuzzy.DefaultThreshold)
	assert.False(t, ok)
}

func TestExtractMentions_SwitchingText(t *testing.T) {
	r := crmRegistry()

	text := "We switched from Salesforce to HubSpot last month"
	mentions := r.ExtractMentions(text)
	require.Len(t, mentions, 2)

	names := map[string]domain.CompetitorMention{}
	for _, m := range mentions {
		names[m.Name] = m
	}
	require.Contains(t, names, "Salesforce")
	require.Contains(t, names, "HubSpot")

	for _, m := range mentions {
		assert.GreaterOrEqual(t, m.Confidence, 0.8)
		assert.Equal(t, m.MatchedText, text[m.Position:m.Position+len(m.MatchedText)])
	}

	assert.Equal(t, domain.DisplacementSwitchingFrom, ClassifyDisplacement(text))
}

func TestExtractMentions_CaseConfidence(t *testing.T) {
	r := crmRegistry()

	exact := r.ExtractMentions("Salesforce is everywhere")
	require.Len(t, exact, 1)
	assert.Equal(t, 1.0, exact[0].Confidence)

	insensitive := r.ExtractMentions("SALESFORCE is everywhere")
	require.Len(t, insensitive, 1)
	assert.Equal(t, 0.95, insensitive[0].Confidence)
}

func TestExtractMentions_OverlapDedup(t *testing.T) {
	r := NewRegistry(logger.NewNop())
	// "sales force cloud" and "sales force" overlap wherever the longer
	// alias appears.
	r.Register(domain.CompetitorAlias{CanonicalName: "Salesforce", Aliases: []string{"sales force", "sales force cloud"}})

	mentions := r.ExtractMentions("We evaluated Sales Force Cloud last year")
	require.NotEmpty(t, mentions)

	for i := 0; i < len(mentions); i++ {
		for j := i + 1; j < len(mentions); j++ {
			iEnd := mentions[i].Position + len(mentions[i].MatchedText)
			jEnd := mentions[j].Position + len(mentions[j].MatchedText)
			overlap := mentions[i].Position < jEnd && mentions[j].Position < iEnd
			assert.False(t, overlap, "retained mentions %d and %d overlap", i, j)
		}
	}
}

func TestExtractMentions_ShortAliasesIgnored(t *testing.T) {
	r := NewRegistry(logger.NewNop())
	r.Register(domain.CompetitorAlias{CanonicalName: "Monday.com", Aliases: []string{"mo"}})

	assert.Empty(t, r.ExtractMentions("mo money mo problems"),
		"aliases shorter than three characters are never scanned")
}

func TestExtractMentions_EmptyText(t *testing.T) {
	r := crmRegistry()
	assert.Empty(t, r.ExtractMentions(""))
	assert.Empty(t, r.ExtractMentions("   "))
}

func TestPrimaryCompetitor(t *testing.T) {
	r := crmRegistry()

	text := "HubSpot beats Salesforce, and HubSpot keeps improving while hubspot grows"
	mentions := r.ExtractMentions(text)
	assert.Equal(t, "HubSpot", PrimaryCompetitor(mentions))

	assert.Empty(t, PrimaryCompetitor(nil))
}

func TestClassifyDisplacement_FamilyOrder(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.DisplacementType
	}{
		{"switching from", "we are migrating from Salesforce", domain.DisplacementSwitchingFrom},
		{"switching to", "we just switched to HubSpot", domain.DisplacementSwitchingTo},
		{"comparing", "Salesforce vs HubSpot for a small team", domain.DisplacementComparing},
		{"complaint", "so frustrated with this CRM", domain.DisplacementComplaint},
		{"none", "we like our current setup", domain.DisplacementNone},
		// "switched from X to Y" hits both switch families; the
		// switching-from family is tested first and wins.
		{"from outranks to", "switched from Salesforce to HubSpot", domain.DisplacementSwitchingFrom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDisplacement(tt.text))
		})
	}
}

func TestAnalyze(t *testing.T) {
	r := crmRegistry()

	analysis := r.Analyze("We switched from Salesforce to HubSpot last month")
	require.NotNil(t, analysis)
	assert.Len(t, analysis.Mentions, 2)
	assert.Equal(t, domain.DisplacementSwitchingFrom, analysis.Displacement)
	assert.NotEmpty(t, analysis.PrimaryCompetitor)
}
