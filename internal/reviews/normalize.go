// Package reviews normalizes reviews from heterogeneous platforms into one
// schema and computes aggregate rating, sentiment, trend and theme data.
package reviews

import (
	"math"
	"time"

	"github.com/brandsight/signal-engine/internal/domain"
)

// RawReview is a source-shaped review before normalization. RatingScale is
// the platform's maximum rating (10 for 10-point platforms); zero means the
// rating is already on the 1-5 scale.
type RawReview struct {
	ID           string    `json:"id"`
	Platform     string    `json:"platform"`
	Rating       float64   `json:"rating"`
	RatingScale  float64   `json:"rating_scale,omitempty"`
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
	Verified     bool      `json:"verified"`
	HelpfulVotes int       `json:"helpful_votes,omitempty"`
}

const targetScale = 5.0

// Normalize maps a source-shaped review onto the unified schema, rescaling
// the rating to 1-5 via round(raw/scale*5), clamped to [1,5].
func Normalize(raw RawReview) domain.NormalizedReview {
	return domain.NormalizedReview{
		ID:           raw.ID,
		Platform:     raw.Platform,
		Rating:       normalizeRating(raw.Rating, raw.RatingScale),
		Title:        raw.Title,
		Body:         raw.Body,
		ReviewerName: raw.ReviewerName,
		ReviewerRole: raw.ReviewerRole,
		CompanyName:  raw.CompanyName,
		CompanySize:  raw.CompanySize,
		Date:         raw.Date,
		URL:          raw.URL,
		Pros:         raw.Pros,
		Cons:         raw.Cons,
		UseCase:      raw.UseCase,
		IsVerified:   raw.Verified,
		HelpfulVotes: raw.HelpfulVotes,
	}
}

// NormalizeAll normalizes a batch, preserving order.
func NormalizeAll(raws []RawReview) []domain.NormalizedReview {
	out := make([]domain.NormalizedReview, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

func normalizeRating(raw, scale float64) int {
	if scale <= 0 {
		scale = targetScale
	}
	rating := int(math.Round(raw / scale * targetScale))
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return rating
}
