package api

import (
	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/reviews"
)

// ClassifyRequest represents a single classification request
type ClassifyRequest struct {
	Signal domain.NationalSignal `json:"signal" binding:"required"`
}

// ClassifyResponse represents a classification response
type ClassifyResponse struct {
	Result *domain.NationalSignalResult `json:"result"`
}

// BatchClassifyRequest represents a batch classification request. The upper
// bound on batch size is enforced by the handler from engine configuration.
type BatchClassifyRequest struct {
	Signals []domain.NationalSignal `json:"signals" binding:"required,min=1"`
}

// BatchClassifyResponse represents a batch classification response
type BatchClassifyResponse struct {
	Results []domain.NationalSignalResult `json:"results"`
	Total   int                           `json:"total"`
}

// IntelligenceRequest asks for a market-level aggregation over a batch.
type IntelligenceRequest struct {
	Signals []domain.NationalSignal `json:"signals" binding:"required,min=1"`
}

// IntelligenceResponse carries the aggregated report plus the per-signal
// classifications it was built from.
type IntelligenceResponse struct {
	Intelligence *domain.MarketIntelligence    `json:"intelligence"`
	Results      []domain.NationalSignalResult `json:"results"`
}

// VocabularyRequest represents a vocabulary extraction request
type VocabularyRequest struct {
	Profile domain.BrandProfile `json:"profile" binding:"required"`
}

// VocabularyResponse represents a vocabulary extraction response
type VocabularyResponse struct {
	Vocabulary *domain.BrandVocabulary `json:"vocabulary"`
}

// OverlapRequest scores one text against a profile's vocabulary.
type OverlapRequest struct {
	Profile domain.BrandProfile `json:"profile" binding:"required"`
	Text    string              `json:"text" binding:"required"`
}

// OverlapResponse carries the overlap score in [0,1].
type OverlapResponse struct {
	Score float64 `json:"score"`
}

// QueriesRequest represents a query generation request
type QueriesRequest struct {
	Profile domain.BrandProfile `json:"profile" binding:"required"`
	Budget  int                 `json:"budget,omitempty"`
}

// QueriesResponse represents a query generation response
type QueriesResponse struct {
	Queries []domain.GeneratedQuery `json:"queries"`
	Total   int                     `json:"total"`
}

// AggregateReviewsRequest represents a review aggregation request
type AggregateReviewsRequest struct {
	Entity  string              `json:"entity" binding:"required"`
	Reviews []reviews.RawReview `json:"reviews"`
}

// AggregateReviewsResponse represents a review aggregation response
type AggregateReviewsResponse struct {
	Data *domain.AggregatedReviewData `json:"data"`
}

// PainReviewsRequest asks for ranked displacement openings in competitor
// reviews at or below MaxRating.
type PainReviewsRequest struct {
	Reviews   []reviews.RawReview `json:"reviews" binding:"required"`
	MaxRating int                 `json:"max_rating,omitempty"`
	Limit     int                 `json:"limit,omitempty"`
}

// PainReviewsResponse carries the ranked pain reviews.
type PainReviewsResponse struct {
	Reviews []domain.NormalizedReview `json:"reviews"`
}

// MatchTrendsRequest represents a trend matching request
type MatchTrendsRequest struct {
	Profile domain.BrandProfile `json:"profile" binding:"required"`
	Trends  []domain.Trend      `json:"trends" binding:"required"`
}

// MatchTrendsResponse represents a trend matching response
type MatchTrendsResponse struct {
	Triggers []domain.CustomerTrigger  `json:"triggers"`
	Results  []domain.TrendMatchResult `json:"results"`
}

// VerifySourceRequest represents a source verification request
type VerifySourceRequest struct {
	Source domain.VerifiedSource `json:"source" binding:"required"`
}

// VerifySourceResponse represents a source verification response
type VerifySourceResponse struct {
	Result domain.VerificationResult `json:"result"`
}

// CompetitorsListResponse represents the registered competitor entries.
type CompetitorsListResponse struct {
	Competitors []domain.CompetitorAlias `json:"competitors"`
	Total       int                      `json:"total"`
}

// ResolveRequest resolves a possibly-misspelled competitor name against the
// registry. A positive Threshold overrides the configured minimum
// similarity.
type ResolveRequest struct {
	Name      string  `json:"name" binding:"required"`
	Threshold float64 `json:"threshold,omitempty"`
}

// ResolveResponse carries the resolution outcome. MentionType is "fuzzy"
// for sub-exact matches and "direct" or "alias" for exact hits.
type ResolveResponse struct {
	Input         string             `json:"input"`
	CanonicalName string             `json:"canonical_name,omitempty"`
	Similarity    float64            `json:"similarity"`
	MentionType   domain.MentionType `json:"mention_type,omitempty"`
	Resolved      bool               `json:"resolved"`
}

// MentionsRequest extracts competitor mentions from free text.
type MentionsRequest struct {
	Text string `json:"text" binding:"required"`
}

// MentionsResponse carries the full attribution analysis.
type MentionsResponse struct {
	Analysis *domain.CompetitorAnalysis `json:"analysis"`
}

// StatsResponse summarizes engine state.
type StatsResponse struct {
	Service       string `json:"service"`
	Version       string `json:"version"`
	Competitors   int    `json:"competitors"`
	Concurrency   int    `json:"concurrency"`
	VerifierCache int    `json:"verifier_cache"`
}
