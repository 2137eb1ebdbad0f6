package signals

import (
	"regexp"

	"github.com/brandsight/signal-engine/internal/domain"
)

// churnFamily pairs a churn type with its indicator patterns. Families are
// tried in slice order; the first family with a hit fixes the churn type,
// but indicator snippets are collected from every family.
type churnFamily struct {
	churnType domain.ChurnType
	patterns  []*regexp.Regexp
}

var churnFamilies = []churnFamily{
	{
		churnType: domain.ChurnExplicit,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:already\s+)?cancel(?:l?ed|ing)?\s+(?:our|my|the)\s+(?:subscription|contract|account|plan)\b`),
			regexp.MustCompile(`(?i)\bnot\s+renewing\b`),
			regexp.MustCompile(`(?i)\b(?:terminating|ending)\s+(?:our|my|the)\s+(?:contract|agreement|service)\b`),
			regexp.MustCompile(`(?i)\b(?:we|i)(?:'re| are| am)\s+(?:leaving|churning|done)\b`),
		},
	},
	{
		churnType: domain.ChurnImplicit,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:considering|thinking about|exploring)\s+(?:alternatives?|other options|leaving|cancel(?:l?ing)?)\b`),
			regexp.MustCompile(`(?i)\b(?:reevaluating|re-evaluating|reconsidering)\s+(?:our|the)\s+(?:contract|subscription|relationship|vendor)\b`),
			regexp.MustCompile(`(?i)\bnot\s+sure\s+(?:we|i)(?:'ll| will)\s+(?:renew|continue|keep)\b`),
		},
	},
	{
		churnType: domain.ChurnCompetitive,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:switching|moving|migrating)\s+to\s+\w+`),
			regexp.MustCompile(`(?i)\b(?:competitor|alternative)\s+(?:offers?|has|gives)\b`),
			regexp.MustCompile(`(?i)\bgot\s+a\s+better\s+(?:deal|offer|price)\s+from\b`),
		},
	},
	{
		churnType: domain.ChurnSentiment,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:extremely|deeply|very)\s+(?:disappointed|frustrated|unhappy)\b`),
			regexp.MustCompile(`(?i)\b(?:lost|losing)\s+(?:faith|trust|confidence)\s+in\b`),
			regexp.MustCompile(`(?i)\b(?:last straw|breaking point|had enough)\b`),
		},
	},
}

// Severity patterns, checked critical > high > medium; anything with churn
// indicators but no severity hit is low.
var (
	severityCriticalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\balready\s+cancel(?:l?ed|ing)\b`),
		regexp.MustCompile(`(?i)\b(?:contract|subscription)\s+(?:is\s+)?(?:terminated|cancelled|canceled)\b`),
		regexp.MustCompile(`(?i)\bfinal\s+(?:decision|notice)\b`),
	}
	severityHighPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcancel(?:l?ing|l?ed)?\b`),
		regexp.MustCompile(`(?i)\bnot\s+renewing\b`),
		regexp.MustCompile(`(?i)\bswitching\s+to\b`),
	}
	severityMediumPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:considering|thinking about|exploring)\b`),
		regexp.MustCompile(`(?i)\b(?:disappointed|frustrated|unhappy)\b`),
	}
)

// Timeframe keyword groups: immediate, near-term, else future.
var (
	timeframeImmediatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:already|immediately|today|right now|this week|asap)\b`),
	}
	timeframeNearTermPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:this month|next month|this quarter|soon|within \d+ (?:days?|weeks?))\b`),
	}
)

// DetectChurn scans the four churn families in order. The first family with
// a hit fixes the type; indicator snippets are collected across all
// families. Returns nil when no family matches.
func DetectChurn(text string) *domain.ChurnSignal {
	var (
		churnType  domain.ChurnType
		typed      bool
		indicators []string
	)

	for _, family := range churnFamilies {
		matched := false
		for _, p := range family.patterns {
			if hit := p.FindString(text); hit != "" {
				matched = true
				indicators = append(indicators, hit)
			}
		}
		if matched && !typed {
			churnType = family.churnType
			typed = true
		}
	}

	if !typed {
		return nil
	}

	return &domain.ChurnSignal{
		Type:       churnType,
		Indicators: indicators,
		Severity:   churnSeverity(text),
		Timeframe:  churnTimeframe(text),
	}
}

func churnSeverity(text string) domain.Severity {
	for _, p := range severityCriticalPatterns {
		if p.MatchString(text) {
			return domain.SeverityCritical
		}
	}
	for _, p := range severityHighPatterns {
		if p.MatchString(text) {
			return domain.SeverityHigh
		}
	}
	for _, p := range severityMediumPatterns {
		if p.MatchString(text) {
			return domain.SeverityMedium
		}
	}
	return domain.SeverityLow
}

func churnTimeframe(text string) domain.Timeframe {
	for _, p := range timeframeImmediatePatterns {
		if p.MatchString(text) {
			return domain.TimeframeImmediate
		}
	}
	for _, p := range timeframeNearTermPatterns {
		if p.MatchString(text) {
			return domain.TimeframeNearTerm
		}
	}
	return domain.TimeframeFuture
}
