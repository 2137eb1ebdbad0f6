package domain

import "time"

// SignalType is one of the fixed national-signal categories. Detection
// evaluates the families in a fixed order and returns the first hit;
// SignalFeatureComparison is the default when nothing matches.
type SignalType string

// Signal type constants, in detection precedence order.
const (
	SignalChurnAnnouncement   SignalType = "churn-announcement"
	SignalSwitchingIntent     SignalType = "switching-intent"
	SignalCompetitorComplaint SignalType = "competitor-complaint"
	SignalPricingDiscussion   SignalType = "pricing-discussion"
	SignalIntegrationRequest  SignalType = "integration-request"
	SignalFeatureRequest      SignalType = "feature-request"
	SignalRecommendationAsk   SignalType = "recommendation-seeking"
	SignalVendorEvaluation    SignalType = "vendor-evaluation"
	SignalSupportFrustration  SignalType = "support-frustration"
	SignalOutageReport        SignalType = "outage-report"
	SignalContractRenewal     SignalType = "contract-renewal"
	SignalExpansionNeed       SignalType = "expansion-need"
	SignalToolConsolidation   SignalType = "tool-consolidation"
	SignalFeatureComparison   SignalType = "feature-comparison"
)

// ChurnType classifies how churn risk surfaced in the text.
type ChurnType string

// Churn type constants, in detection precedence order.
const (
	ChurnExplicit    ChurnType = "explicit"
	ChurnImplicit    ChurnType = "implicit"
	ChurnCompetitive ChurnType = "competitive"
	ChurnSentiment   ChurnType = "sentiment"
)

// Severity grades churn and urgency findings.
type Severity string

// Severity constants.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Timeframe estimates how soon a churn decision lands.
type Timeframe string

// Timeframe constants.
const (
	TimeframeImmediate Timeframe = "immediate"
	TimeframeNearTerm  Timeframe = "near-term"
	TimeframeFuture    Timeframe = "future"
)

// AuthorMeta is optional author metadata attached to a raw signal.
type AuthorMeta struct {
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
}

// NationalSignal is a raw external signal: free text plus source metadata.
type NationalSignal struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Platform  string      `json:"platform"`
	SourceURL string      `json:"source_url,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Author    *AuthorMeta `json:"author,omitempty"`
}

// ChurnSignal is a detected churn-risk finding.
type ChurnSignal struct {
	Type              ChurnType `json:"type"`
	Indicators        []string  `json:"indicators"`
	Severity          Severity  `json:"severity"`
	Timeframe         Timeframe `json:"timeframe"`
	CompetitorContext string    `json:"competitor_context,omitempty"`
}

// IntegrationOpportunity is a detected integration-ecosystem finding: the
// first category from the integration table with a product hit in the text.
type IntegrationOpportunity struct {
	Category  string   `json:"category"`
	Products  []string `json:"products"`
	Requested bool     `json:"requested"`
}

// ConversionPotential is the four-tier conversion estimate.
type ConversionPotential string

// Conversion potential constants.
const (
	ConversionVeryHigh ConversionPotential = "very-high"
	ConversionHigh     ConversionPotential = "high"
	ConversionMedium   ConversionPotential = "medium"
	ConversionLow      ConversionPotential = "low"
)

// SignalInsight is the generated recommendation attached to a classified
// signal.
type SignalInsight struct {
	ActionableInsight   string              `json:"actionable_insight"`
	RecommendedTactic   string              `json:"recommended_tactic"`
	ConversionPotential ConversionPotential `json:"conversion_potential"`
}

// NationalSignalResult wraps a classified signal with its composite score
// and every detector's findings.
type NationalSignalResult struct {
	SignalID       string                  `json:"signal_id"`
	Type           SignalType              `json:"type"`
	CompositeScore float64                 `json:"composite_score"`
	Urgency        Severity                `json:"urgency"`
	CompanySize    string                  `json:"company_size,omitempty"`
	Churn          *ChurnSignal            `json:"churn,omitempty"`
	Integration    *IntegrationOpportunity `json:"integration,omitempty"`
	Competitors    *CompetitorAnalysis     `json:"competitors,omitempty"`
	Insight        SignalInsight           `json:"insight"`
	ClassifiedAt   time.Time               `json:"classified_at"`
}

// CompetitorCount pairs a canonical competitor name with its mention count.
type CompetitorCount struct {
	Name     string `json:"name"`
	Mentions int    `json:"mentions"`
}

// IndicatorCount pairs a churn indicator with its frequency.
type IndicatorCount struct {
	Indicator string `json:"indicator"`
	Count     int    `json:"count"`
}

// IntegrationDemand pairs an integration category with how often it was
// requested.
type IntegrationDemand struct {
	Category string `json:"category"`
	Requests int    `json:"requests"`
}

// MarketIntelligence aggregates many classified signals into a market-level
// report.
type MarketIntelligence struct {
	TotalSignals       int                 `json:"total_signals"`
	TopCompetitors     []CompetitorCount   `json:"top_competitors"`
	TopChurnIndicators []IndicatorCount    `json:"top_churn_indicators"`
	IntegrationDemand  []IntegrationDemand `json:"integration_demand"`
	PricingSentiment   float64             `json:"pricing_sentiment"`
	GeneratedAt        time.Time           `json:"generated_at"`
}
