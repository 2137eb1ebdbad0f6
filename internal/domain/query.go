package domain

// QueryType identifies the external surface a generated query targets.
type QueryType string

// Query type constants.
const (
	QueryTypeSearch QueryType = "search"
	QueryTypeNews   QueryType = "news"
	QueryTypeVideo  QueryType = "video"
	QueryTypeSocial QueryType = "social"
	QueryTypeAI     QueryType = "ai"
)

// QueryIntent captures why a query was generated.
type QueryIntent string

// Query intent constants.
const (
	IntentTrend       QueryIntent = "trend"
	IntentPainPoint   QueryIntent = "pain_point"
	IntentOpportunity QueryIntent = "opportunity"
	IntentCompetitor  QueryIntent = "competitor"
	IntentLocal       QueryIntent = "local"
	IntentProduct     QueryIntent = "product"
	IntentUseCase     QueryIntent = "use_case"
	IntentOutcome     QueryIntent = "outcome"
	IntentPersona     QueryIntent = "persona"
)

// GeneratedQuery is one prioritized external-search query. Batches are
// deduplicated by case-insensitive query text and sorted by priority
// descending.
type GeneratedQuery struct {
	Query          string      `json:"query"`
	Type           QueryType   `json:"type"`
	Priority       int         `json:"priority"`
	SourceKeywords []string    `json:"source_keywords"`
	Intent         QueryIntent `json:"intent"`
}
