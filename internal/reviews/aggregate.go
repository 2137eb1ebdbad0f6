package reviews

import (
	"regexp"
	"sort"
	"time"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// Aggregation constants.
const (
	trendThreshold     = 0.3
	sentimentThreshold = 0.3
	recentWindowDays   = 30
	priorWindowDays    = 90
	maxThemes          = 10
	maxThemeExamples   = 3
)

// Recency multipliers for pain-review ranking.
const (
	recencyWeek    = 3.0
	recencyMonth   = 2.0
	recencyQuarter = 1.5
	recencyOlder   = 1.0
)

// Aggregator computes AggregatedReviewData summaries. The clock is
// injectable so recency windows are testable.
type Aggregator struct {
	logger logger.Logger
	now    func() time.Time
}

// NewAggregator creates a review aggregator.
func NewAggregator(log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Aggregator{logger: log, now: time.Now}
}

// NewAggregatorWithClock creates an aggregator with a fixed clock.
func NewAggregatorWithClock(log logger.Logger, now func() time.Time) *Aggregator {
	a := NewAggregator(log)
	if now != nil {
		a.now = now
	}
	return a
}

// Aggregate computes the full summary for one entity's reviews. An empty or
// partial input produces a structurally valid zero-valued summary, never an
// error.
func (a *Aggregator) Aggregate(entity string, reviews []domain.NormalizedReview) *domain.AggregatedReviewData {
	data := &domain.AggregatedReviewData{
		Entity:             entity,
		TotalReviews:       len(reviews),
		PlatformCounts:     make(map[string]int),
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		RecencyTrend:       domain.TrendStable,
		Sentiment:          domain.SentimentNeutral,
		PainPoints:         []domain.ReviewTheme{},
		Desires:            []domain.ReviewTheme{},
	}
	if len(reviews) == 0 {
		return data
	}

	now := a.now()
	ratingSum := 0
	ratedCount := 0
	sentimentSum := 0.0

	for _, r := range reviews {
		data.PlatformCounts[r.Platform]++
		if r.Rating >= 1 && r.Rating <= 5 {
			data.RatingDistribution[r.Rating]++
			ratingSum += r.Rating
			sentimentSum += float64(r.Rating-3) / 2
			ratedCount++
		}

		switch age := now.Sub(r.Date); {
		case age <= 7*24*time.Hour:
			data.Recency.Last7Days++
		case age <= recentWindowDays*24*time.Hour:
			data.Recency.Last30Days++
		case age <= priorWindowDays*24*time.Hour:
			data.Recency.Last90Days++
		default:
			data.Recency.Older++
		}
	}

	// Only ratings inside the 1-5 scale feed the mean; a zero Rating means
	// the source carried no rating, not a terrible one.
	if ratedCount > 0 {
		data.AverageRating = float64(ratingSum) / float64(ratedCount)
		data.SentimentScore = sentimentSum / float64(ratedCount)
	}
	data.RecencyTrend = a.recencyTrend(reviews, now)
	data.PainPoints = extractThemes(reviews, painPatterns)
	data.Desires = extractThemes(reviews, desirePatterns)
	data.Sentiment = sentimentLabel(data.SentimentScore, data.PainPoints, data.Desires)

	a.logger.Debug("reviews aggregated",
		logger.String("entity", entity),
		logger.Int("total", data.TotalReviews),
		logger.Float64("avg_rating", data.AverageRating),
		logger.String("trend", string(data.RecencyTrend)),
	)

	return data
}

// recencyTrend compares the mean rating of the last 30 days against the
// 31-90 day window. A delta of at least ±0.3 moves the trend off stable;
// an empty window keeps it stable.
func (a *Aggregator) recencyTrend(reviews []domain.NormalizedReview, now time.Time) domain.RatingTrend {
	recentSum, recentCount := 0, 0
	priorSum, priorCount := 0, 0

	for _, r := range reviews {
		age := now.Sub(r.Date)
		switch {
		case age <= recentWindowDays*24*time.Hour:
			recentSum += r.Rating
			recentCount++
		case age <= priorWindowDays*24*time.Hour:
			priorSum += r.Rating
			priorCount++
		}
	}

	if recentCount == 0 || priorCount == 0 {
		return domain.TrendStable
	}

	delta := float64(recentSum)/float64(recentCount) - float64(priorSum)/float64(priorCount)
	switch {
	case delta >= trendThreshold:
		return domain.TrendImproving
	case delta <= -trendThreshold:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func sentimentLabel(score float64, pains, desires []domain.ReviewTheme) domain.SentimentLabel {
	switch {
	case score > sentimentThreshold:
		return domain.SentimentPositive
	case score < -sentimentThreshold:
		return domain.SentimentNegative
	case len(pains) > 0 && len(desires) > 0:
		return domain.SentimentMixed
	default:
		return domain.SentimentNeutral
	}
}

// extractThemes scans every review body against a pattern family set,
// groups hits by normalized theme key and returns the top themes by
// frequency with up to three example excerpts each.
func extractThemes(reviews []domain.NormalizedReview, patterns []*regexp.Regexp) []domain.ReviewTheme {
	type themeAccum struct {
		theme    string
		count    int
		examples []string
	}
	byKey := make(map[string]*themeAccum)
	order := make([]string, 0)

	for _, r := range reviews {
		for _, p := range patterns {
			for _, loc := range p.FindAllStringIndex(r.Body, -1) {
				matched := r.Body[loc[0]:loc[1]]
				key := normalizeThemeKey(matched)
				if key == "" {
					continue
				}
				acc, ok := byKey[key]
				if !ok {
					acc = &themeAccum{theme: key}
					byKey[key] = acc
					order = append(order, key)
				}
				acc.count++
				if len(acc.examples) < maxThemeExamples {
					acc.examples = append(acc.examples,
						textutil.Excerpt(r.Body, loc[0], loc[1], excerptBefore, excerptAfter))
				}
			}
		}
	}

	themes := make([]domain.ReviewTheme, 0, len(byKey))
	for _, key := range order {
		acc := byKey[key]
		themes = append(themes, domain.ReviewTheme{
			Theme:     acc.theme,
			Frequency: acc.count,
			Examples:  acc.examples,
		})
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Frequency > themes[j].Frequency
	})
	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}
	return themes
}

// CompetitorPainReviews filters reviews at or below the rating ceiling and
// ranks them by recencyMultiplier * max(helpfulVotes, 1) descending. These
// are the highest-value displacement openings in a competitor's reviews.
func (a *Aggregator) CompetitorPainReviews(reviews []domain.NormalizedReview, maxRating int) []domain.NormalizedReview {
	now := a.now()

	type scored struct {
		review domain.NormalizedReview
		score  float64
	}
	var candidates []scored
	for _, r := range reviews {
		if r.Rating > maxRating {
			continue
		}
		votes := r.HelpfulVotes
		if votes < 1 {
			votes = 1
		}
		candidates = append(candidates, scored{
			review: r,
			score:  recencyMultiplier(now.Sub(r.Date)) * float64(votes),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]domain.NormalizedReview, len(candidates))
	for i, c := range candidates {
		out[i] = c.review
	}
	return out
}

func recencyMultiplier(age time.Duration) float64 {
	switch {
	case age <= 7*24*time.Hour:
		return recencyWeek
	case age <= recentWindowDays*24*time.Hour:
		return recencyMonth
	case age <= priorWindowDays*24*time.Hour:
		return recencyQuarter
	default:
		return recencyOlder
	}
}
