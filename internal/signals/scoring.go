package signals

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/brandsight/signal-engine/internal/domain"
)

// Composite score boosts, applied multiplicatively then clamped to 1.0.
const (
	boostHighValueType = 1.4
	boostChurnSeverity = 1.3
	boostEnterprise    = 1.25
)

// Conversion potential tier thresholds on the additive point score.
const (
	pointsVeryHigh = 6
	pointsHigh     = 4
	pointsMedium   = 2
)

// highValueSignalTypes earn the 1.4x boost and the top conversion base
// points: they indicate a live buying or leaving decision.
var highValueSignalTypes = map[domain.SignalType]struct{}{
	domain.SignalChurnAnnouncement: {},
	domain.SignalSwitchingIntent:   {},
	domain.SignalVendorEvaluation:  {},
}

// mediumValueSignalTypes indicate active dissatisfaction or evaluation.
var mediumValueSignalTypes = map[domain.SignalType]struct{}{
	domain.SignalCompetitorComplaint: {},
	domain.SignalRecommendationAsk:   {},
	domain.SignalContractRenewal:     {},
	domain.SignalPricingDiscussion:   {},
}

// platformCredibility weights the composite score by source platform.
// Unknown platforms get the default.
var platformCredibility = map[string]float64{
	"g2":         0.9,
	"capterra":   0.9,
	"linkedin":   0.85,
	"reddit":     0.7,
	"hackernews": 0.7,
	"twitter":    0.6,
	"x":          0.6,
	"facebook":   0.5,
}

const (
	defaultCredibility    = 0.5
	credibilityPointFloor = 0.8
)

// recencyScore decays with signal age.
func recencyScore(age time.Duration) float64 {
	switch {
	case age <= 24*time.Hour:
		return 1.0
	case age <= 7*24*time.Hour:
		return 0.8
	case age <= 30*24*time.Hour:
		return 0.6
	case age <= 90*24*time.Hour:
		return 0.4
	default:
		return 0.2
	}
}

func credibility(platform string) float64 {
	if c, ok := platformCredibility[strings.ToLower(platform)]; ok {
		return c
	}
	return defaultCredibility
}

// compositeScore multiplies recency by platform credibility, applies the
// fixed boosts and clamps to 1.0.
func compositeScore(signal domain.NationalSignal, result *domain.NationalSignalResult, now time.Time) float64 {
	score := recencyScore(now.Sub(signal.Timestamp)) * credibility(signal.Platform)

	if _, ok := highValueSignalTypes[result.Type]; ok {
		score *= boostHighValueType
	}
	if c := result.Churn; c != nil && (c.Severity == domain.SeverityHigh || c.Severity == domain.SeverityCritical) {
		score *= boostChurnSeverity
	}
	if result.CompanySize == "enterprise" {
		score *= boostEnterprise
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// conversionPotential maps an additive point score to the four tiers.
// Points: signal-type base + churn severity + competitor mention + company
// size + platform credibility.
func conversionPotential(signal domain.NationalSignal, result *domain.NationalSignalResult) domain.ConversionPotential {
	points := 1
	if _, ok := highValueSignalTypes[result.Type]; ok {
		points = 3
	} else if _, ok := mediumValueSignalTypes[result.Type]; ok {
		points = 2
	}

	if c := result.Churn; c != nil {
		switch c.Severity {
		case domain.SeverityCritical:
			points += 3
		case domain.SeverityHigh:
			points += 2
		case domain.SeverityMedium:
			points++
		}
	}

	if result.Competitors != nil && len(result.Competitors.Mentions) > 0 {
		points++
	}

	switch result.CompanySize {
	case "enterprise":
		points += 2
	case "mid-market":
		points++
	}

	if credibility(signal.Platform) >= credibilityPointFloor {
		points++
	}

	switch {
	case points >= pointsVeryHigh:
		return domain.ConversionVeryHigh
	case points >= pointsHigh:
		return domain.ConversionHigh
	case points >= pointsMedium:
		return domain.ConversionMedium
	default:
		return domain.ConversionLow
	}
}

// classifyUrgency grades how fast sales should react: critical churn or
// immediate timeframe outranks everything, then high-value signal types.
func classifyUrgency(result *domain.NationalSignalResult) domain.Severity {
	if c := result.Churn; c != nil {
		if c.Severity == domain.SeverityCritical || c.Timeframe == domain.TimeframeImmediate {
			return domain.SeverityCritical
		}
		if c.Severity == domain.SeverityHigh {
			return domain.SeverityHigh
		}
	}
	if _, ok := highValueSignalTypes[result.Type]; ok {
		return domain.SeverityHigh
	}
	if _, ok := mediumValueSignalTypes[result.Type]; ok {
		return domain.SeverityMedium
	}
	return domain.SeverityLow
}

var companySizeDigits = regexp.MustCompile(`\d+`)

// normalizeCompanySize maps free-form company-size strings ("1000+",
// "51-200 employees", "Enterprise") onto startup/smb/mid-market/enterprise.
// Unparseable input returns empty.
func normalizeCompanySize(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return ""
	}

	switch {
	case strings.Contains(lower, "enterprise"):
		return "enterprise"
	case strings.Contains(lower, "mid-market"), strings.Contains(lower, "midmarket"):
		return "mid-market"
	case strings.Contains(lower, "startup"), strings.Contains(lower, "small"):
		return "startup"
	}

	nums := companySizeDigits.FindAllString(lower, -1)
	if len(nums) == 0 {
		return ""
	}
	// Classify on the largest number present ("51-200" sizes by 200).
	largest := 0
	for _, n := range nums {
		if v, err := strconv.Atoi(n); err == nil && v > largest {
			largest = v
		}
	}
	switch {
	case largest >= 1000:
		return "enterprise"
	case largest >= 200:
		return "mid-market"
	case largest >= 50:
		return "smb"
	case largest > 0:
		return "startup"
	default:
		return ""
	}
}
