package domain

import "time"

// NormalizedReview unifies reviews from heterogeneous source platforms into
// one shape. Rating is always on the 1-5 scale after normalization.
type NormalizedReview struct {
	ID           string    `json:"id"`
	Platform     string    `json:"platform"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title,omitempty"`
	Body         string    `json:"body"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	ReviewerRole string    `json:"reviewer_role,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	CompanySize  string    `json:"company_size,omitempty"`
	Date         time.Time `json:"date"`
	URL          string    `json:"url,omitempty"`
	Pros         []string  `json:"pros,omitempty"`
	Cons         []string  `json:"cons,omitempty"`
	UseCase      string    `json:"use_case,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	HelpfulVotes int       `json:"helpful_votes,omitempty"`
}

// RatingTrend classifies the direction of recent ratings against the prior
// window.
type RatingTrend string

// Rating trend constants.
const (
	TrendImproving RatingTrend = "improving"
	TrendDeclining RatingTrend = "declining"
	TrendStable    RatingTrend = "stable"
)

// SentimentLabel buckets the average review sentiment.
type SentimentLabel string

// Sentiment label constants.
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentMixed    SentimentLabel = "mixed"
	SentimentNeutral  SentimentLabel = "neutral"
)

// ReviewTheme is one extracted pain point or desire, grouped under a
// normalized theme key with up to three example excerpts.
type ReviewTheme struct {
	Theme     string   `json:"theme"`
	Frequency int      `json:"frequency"`
	Examples  []string `json:"examples,omitempty"`
}

// RecencyBuckets counts reviews by age.
type RecencyBuckets struct {
	Last7Days  int `json:"last_7_days"`
	Last30Days int `json:"last_30_days"`
	Last90Days int `json:"last_90_days"`
	Older      int `json:"older"`
}

// AggregatedReviewData is the computed aggregate over one entity's reviews
// (own brand or one named competitor). Aggregating an empty input yields a
// structurally valid zero-valued summary.
type AggregatedReviewData struct {
	Entity             string             `json:"entity"`
	TotalReviews       int                `json:"total_reviews"`
	PlatformCounts     map[string]int     `json:"platform_counts"`
	RatingDistribution map[int]int        `json:"rating_distribution"`
	AverageRating      float64            `json:"average_rating"`
	RecencyTrend       RatingTrend        `json:"recency_trend"`
	Sentiment          SentimentLabel     `json:"sentiment"`
	SentimentScore     float64            `json:"sentiment_score"`
	PainPoints         []ReviewTheme      `json:"pain_points"`
	Desires            []ReviewTheme      `json:"desires"`
	Recency            RecencyBuckets     `json:"recency"`
}
