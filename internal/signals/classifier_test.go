package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

var signalNow = time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	registry := competitors.NewRegistry(logger.NewNop())
	registry.RegisterAll([]domain.CompetitorAlias{
		{CanonicalName: "Acme", Aliases: []string{"acme corp"}},
		{CanonicalName: "Salesforce", Aliases: []string{"sfdc"}, Domain: "salesforce.com"},
	})
	return NewClassifierWithClock(registry, logger.NewNop(), func() time.Time { return signalNow })
}

func TestDetectSignalType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.SignalType
	}{
		{"churn announcement", "We cancelled our subscription last week", domain.SignalChurnAnnouncement},
		{"switching intent", "We're migrating to a new CRM next quarter", domain.SignalSwitchingIntent},
		{"complaint", "So fed up with this tool's constant bugs", domain.SignalCompetitorComplaint},
		{"pricing", "The latest price increase is hard to justify", domain.SignalPricingDiscussion},
		{"integration", "Does anyone know if it can integrate with Slack?", domain.SignalIntegrationRequest},
		{"feature request", "Would be great if it had bulk export", domain.SignalFeatureRequest},
		{"recommendation", "Any recommendations for a project tracker?", domain.SignalRecommendationAsk},
		{"vendor evaluation", "We are evaluating vendors for our data stack", domain.SignalVendorEvaluation},
		{"support frustration", "Support has been unresponsive for two weeks", domain.SignalSupportFrustration},
		{"outage", "Is anyone else seeing the dashboard is down?", domain.SignalOutageReport},
		{"renewal", "Our contract renewal is coming up in June", domain.SignalContractRenewal},
		{"expansion", "We need more seats as the team doubles", domain.SignalExpansionNeed},
		{"consolidation", "Trying to consolidate our tools into one platform", domain.SignalToolConsolidation},
		{"default", "Product A has a nicer dashboard than Product B", domain.SignalFeatureComparison},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSignalType(tt.text))
		})
	}
}

func TestDetectSignalType_FirstFamilyWins(t *testing.T) {
	// Matches both churn-announcement and switching-intent families; the
	// earlier family in enumeration order must win.
	got := DetectSignalType("We cancelled our subscription and are switching to Acme")
	assert.Equal(t, domain.SignalChurnAnnouncement, got)
}

func TestDetectChurn_AlreadyCancelled(t *testing.T) {
	churn := DetectChurn("I already cancelled our subscription, switching to Acme")

	require.NotNil(t, churn)
	assert.Equal(t, domain.ChurnExplicit, churn.Type, "first matching family fixes the type")
	assert.Equal(t, domain.SeverityCritical, churn.Severity)
	assert.Equal(t, domain.TimeframeImmediate, churn.Timeframe)
	assert.GreaterOrEqual(t, len(churn.Indicators), 2,
		"indicators are collected across all matching families")
}

func TestDetectChurn_TypePrecedence(t *testing.T) {
	// Competitive and sentiment families both match; competitive is tested
	// first so it fixes the type.
	churn := DetectChurn("Got a better deal from a rival and we have lost faith in the product")

	require.NotNil(t, churn)
	assert.Equal(t, domain.ChurnCompetitive, churn.Type)
}

func TestDetectChurn_SeverityCascade(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Severity
	}{
		{"critical", "We already cancelled our subscription", domain.SeverityCritical},
		{"high", "Not renewing when the term ends", domain.SeverityHigh},
		{"medium", "We are considering alternatives, pretty unhappy", domain.SeverityMedium},
		{"low", "Got a better deal from another vendor", domain.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			churn := DetectChurn(tt.text)
			require.NotNil(t, churn)
			assert.Equal(t, tt.want, churn.Severity)
		})
	}
}

func TestDetectChurn_NoSignal(t *testing.T) {
	assert.Nil(t, DetectChurn("Loving the new dashboard, great release"))
}

func TestDetectIntegrationOpportunity(t *testing.T) {
	t.Run("first category wins with all products", func(t *testing.T) {
		opp := DetectIntegrationOpportunity("We need it to sync Salesforce and HubSpot data into Slack")

		require.NotNil(t, opp)
		assert.Equal(t, "crm", opp.Category)
		assert.ElementsMatch(t, []string{"salesforce", "hubspot"}, opp.Products)
		assert.True(t, opp.Requested)
	})

	t.Run("passing reference is not a request", func(t *testing.T) {
		opp := DetectIntegrationOpportunity("Our team moved off Jira last year")

		require.NotNil(t, opp)
		assert.Equal(t, "project-management", opp.Category)
		assert.False(t, opp.Requested)
	})

	t.Run("no products", func(t *testing.T) {
		assert.Nil(t, DetectIntegrationOpportunity("We built everything in-house"))
	})
}

func TestClassify_ChurnScenario(t *testing.T) {
	c := testClassifier(t)

	result := c.Classify(domain.NationalSignal{
		ID:        "sig-1",
		Text:      "I already cancelled our subscription, switching to Acme",
		Platform:  "linkedin",
		Timestamp: signalNow.Add(-2 * time.Hour),
		Author:    &domain.AuthorMeta{CompanySize: "1000+ employees"},
	})

	assert.Equal(t, domain.SignalChurnAnnouncement, result.Type)

	require.NotNil(t, result.Churn)
	assert.Equal(t, domain.SeverityCritical, result.Churn.Severity)
	assert.Equal(t, domain.TimeframeImmediate, result.Churn.Timeframe)
	assert.Equal(t, "Acme", result.Churn.CompetitorContext)

	require.NotNil(t, result.Competitors)
	assert.Equal(t, "Acme", result.Competitors.PrimaryCompetitor)

	assert.Equal(t, "enterprise", result.CompanySize)
	assert.Equal(t, domain.SeverityCritical, result.Urgency)
	assert.Equal(t, domain.ConversionVeryHigh, result.Insight.ConversionPotential)
	assert.NotEmpty(t, result.Insight.ActionableInsight)
	assert.NotEmpty(t, result.Insight.RecommendedTactic)

	// Fresh + credible + every boost still clamps at 1.0.
	assert.InDelta(t, 1.0, result.CompositeScore, 1e-9)
}

func TestClassify_CompositeScoreBounds(t *testing.T) {
	c := testClassifier(t)

	signals := []domain.NationalSignal{
		{ID: "a", Text: "nothing special here", Platform: "unknown", Timestamp: signalNow.Add(-200 * 24 * time.Hour)},
		{ID: "b", Text: "We cancelled our subscription", Platform: "g2", Timestamp: signalNow},
		{ID: "c", Text: "best tools for invoicing?", Platform: "reddit", Timestamp: signalNow.Add(-10 * 24 * time.Hour)},
	}

	for _, s := range signals {
		result := c.Classify(s)
		assert.Greater(t, result.CompositeScore, 0.0)
		assert.LessOrEqual(t, result.CompositeScore, 1.0)
	}
}

func TestClassify_GeneratesMissingSignalID(t *testing.T) {
	c := testClassifier(t)

	result := c.Classify(domain.NationalSignal{
		Text:      "We cancelled our subscription",
		Platform:  "g2",
		Timestamp: signalNow,
	})

	assert.NotEmpty(t, result.SignalID)
}

func TestClassify_StaleObscureSignalScoresLow(t *testing.T) {
	c := testClassifier(t)

	result := c.Classify(domain.NationalSignal{
		ID:        "stale",
		Text:      "Product A has a nicer dashboard than Product B",
		Platform:  "someforum",
		Timestamp: signalNow.Add(-365 * 24 * time.Hour),
	})

	assert.Equal(t, domain.SignalFeatureComparison, result.Type)
	// 0.2 recency * 0.5 default credibility, no boosts.
	assert.InDelta(t, 0.1, result.CompositeScore, 1e-9)
	assert.Equal(t, domain.ConversionLow, result.Insight.ConversionPotential)
	assert.Equal(t, domain.SeverityLow, result.Urgency)
}

func TestNormalizeCompanySize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Enterprise", "enterprise"},
		{"1000+ employees", "enterprise"},
		{"51-200 employees", "mid-market"},
		{"50-100", "smb"},
		{"1-10", "startup"},
		{"small business", "startup"},
		{"", ""},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCompanySize(tt.raw))
		})
	}
}

func TestGenerateMarketIntelligence(t *testing.T) {
	c := testClassifier(t)

	signals := []domain.NationalSignal{
		{ID: "1", Text: "Switching to HubSpot from Salesforce, got a better deal", Platform: "linkedin", Timestamp: signalNow},
		{ID: "2", Text: "Salesforce is fine but we need it to integrate with Slack", Platform: "reddit", Timestamp: signalNow},
		{ID: "3", Text: "This tool is too expensive after the price increase", Platform: "g2", Timestamp: signalNow},
		{ID: "4", Text: "Honestly worth the money, good value for the price", Platform: "g2", Timestamp: signalNow},
	}

	intel, results := c.GenerateMarketIntelligence(signals)

	require.Len(t, results, 4)
	assert.Equal(t, 4, intel.TotalSignals)
	assert.Equal(t, signalNow, intel.GeneratedAt)

	require.NotEmpty(t, intel.TopCompetitors)
	assert.Equal(t, "Salesforce", intel.TopCompetitors[0].Name)
	assert.Equal(t, 2, intel.TopCompetitors[0].Mentions)

	assert.NotEmpty(t, intel.TopChurnIndicators)
}

func TestGenerateMarketIntelligence_Empty(t *testing.T) {
	c := testClassifier(t)

	intel, results := c.GenerateMarketIntelligence(nil)

	assert.Empty(t, results)
	assert.Equal(t, 0, intel.TotalSignals)
	assert.Zero(t, intel.PricingSentiment)
	assert.Empty(t, intel.TopCompetitors)
}
