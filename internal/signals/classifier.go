package signals

import (
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

// Market intelligence list caps.
const (
	maxTopCompetitors     = 10
	maxTopChurnIndicators = 10
)

// Pricing sentiment patterns for the intelligence report.
var (
	pricingPositivePattern = regexp.MustCompile(`(?i)\b(?:worth (?:the|every)|good value|fair price|reasonably priced|great deal)\b`)
	pricingNegativePattern = regexp.MustCompile(`(?i)\b(?:too expensive|overpriced|price (?:hike|increase)|rip.?off|costs? too much)\b`)
)

// Classifier runs every detector over a raw signal and composes the scored
// result. All detection is pure pattern matching; the competitor registry is
// the only shared state and is read-only during classification.
type Classifier struct {
	registry *competitors.Registry
	logger   logger.Logger
	now      func() time.Time
}

// NewClassifier creates a signal classifier over a competitor registry.
func NewClassifier(registry *competitors.Registry, log logger.Logger) *Classifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Classifier{registry: registry, logger: log, now: time.Now}
}

// NewClassifierWithClock creates a classifier with a fixed clock.
func NewClassifierWithClock(registry *competitors.Registry, log logger.Logger, now func() time.Time) *Classifier {
	c := NewClassifier(registry, log)
	if now != nil {
		c.now = now
	}
	return c
}

// Classify runs type detection, churn detection, integration detection and
// competitor attribution over one signal, then scores it. Signals arriving
// without an ID get a generated one so results stay addressable downstream.
func (c *Classifier) Classify(signal domain.NationalSignal) *domain.NationalSignalResult {
	now := c.now()

	if signal.ID == "" {
		signal.ID = uuid.NewString()
	}

	result := &domain.NationalSignalResult{
		SignalID:     signal.ID,
		Type:         DetectSignalType(signal.Text),
		Churn:        DetectChurn(signal.Text),
		Integration:  DetectIntegrationOpportunity(signal.Text),
		ClassifiedAt: now,
	}

	if signal.Author != nil {
		result.CompanySize = normalizeCompanySize(signal.Author.CompanySize)
	}

	if c.registry != nil && c.registry.Size() > 0 {
		if analysis := c.registry.Analyze(signal.Text); len(analysis.Mentions) > 0 {
			result.Competitors = analysis
			if result.Churn != nil && result.Churn.CompetitorContext == "" {
				result.Churn.CompetitorContext = analysis.PrimaryCompetitor
			}
		}
	}

	result.Urgency = classifyUrgency(result)
	result.CompositeScore = compositeScore(signal, result, now)
	result.Insight = BuildInsight(signal, result)

	c.logger.Debug("signal classified",
		logger.String("signal_id", signal.ID),
		logger.String("type", string(result.Type)),
		logger.String("urgency", string(result.Urgency)),
		logger.Float64("composite_score", result.CompositeScore),
	)

	return result
}

// ClassifyAll classifies a batch in order. Each signal is independent.
func (c *Classifier) ClassifyAll(signals []domain.NationalSignal) []domain.NationalSignalResult {
	results := make([]domain.NationalSignalResult, len(signals))
	for i, s := range signals {
		results[i] = *c.Classify(s)
	}
	return results
}

// GenerateMarketIntelligence classifies a batch and aggregates it into a
// market-level report: top competitors by mention count, top churn
// indicators by frequency, integration demand by request count, and a
// pricing sentiment score in [-1,1] from pricing-discussion signals.
func (c *Classifier) GenerateMarketIntelligence(signals []domain.NationalSignal) (*domain.MarketIntelligence, []domain.NationalSignalResult) {
	results := c.ClassifyAll(signals)

	competitorMentions := make(map[string]int)
	churnIndicators := make(map[string]int)
	integrationRequests := make(map[string]int)
	pricingPositive, pricingNegative := 0, 0

	for i := range results {
		r := &results[i]

		if r.Competitors != nil {
			for _, m := range r.Competitors.Mentions {
				competitorMentions[m.Name]++
			}
		}
		if r.Churn != nil {
			for _, ind := range r.Churn.Indicators {
				churnIndicators[ind]++
			}
		}
		if r.Integration != nil && r.Integration.Requested {
			integrationRequests[r.Integration.Category]++
		}
		if r.Type == domain.SignalPricingDiscussion {
			if pricingPositivePattern.MatchString(signals[i].Text) {
				pricingPositive++
			}
			if pricingNegativePattern.MatchString(signals[i].Text) {
				pricingNegative++
			}
		}
	}

	intel := &domain.MarketIntelligence{
		TotalSignals:       len(signals),
		TopCompetitors:     topCompetitors(competitorMentions),
		TopChurnIndicators: topIndicators(churnIndicators),
		IntegrationDemand:  demandByCategory(integrationRequests),
		PricingSentiment:   pricingSentiment(pricingPositive, pricingNegative),
		GeneratedAt:        c.now(),
	}

	c.logger.Info("market intelligence generated",
		logger.Int("signals", intel.TotalSignals),
		logger.Int("competitors", len(intel.TopCompetitors)),
		logger.Float64("pricing_sentiment", intel.PricingSentiment),
	)

	return intel, results
}

func pricingSentiment(positive, negative int) float64 {
	total := positive + negative
	if total == 0 {
		return 0
	}
	return float64(positive-negative) / float64(total)
}

func topCompetitors(counts map[string]int) []domain.CompetitorCount {
	out := make([]domain.CompetitorCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.CompetitorCount{Name: name, Mentions: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mentions != out[j].Mentions {
			return out[i].Mentions > out[j].Mentions
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > maxTopCompetitors {
		out = out[:maxTopCompetitors]
	}
	return out
}

func topIndicators(counts map[string]int) []domain.IndicatorCount {
	out := make([]domain.IndicatorCount, 0, len(counts))
	for ind, n := range counts {
		out = append(out, domain.IndicatorCount{Indicator: ind, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Indicator < out[j].Indicator
	})
	if len(out) > maxTopChurnIndicators {
		out = out[:maxTopChurnIndicators]
	}
	return out
}

func demandByCategory(requests map[string]int) []domain.IntegrationDemand {
	out := make([]domain.IntegrationDemand, 0, len(requests))
	for cat, n := range requests {
		out = append(out, domain.IntegrationDemand{Category: cat, Requests: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Requests != out[j].Requests {
			return out[i].Requests > out[j].Requests
		}
		return out[i].Category < out[j].Category
	})
	return out
}
