package trends

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// Match scoring constants.
const (
	overlapWeight   = 60.0
	typeBonus       = 20.0
	intensityWeight = 10.0
	validationBonus = 10.0

	minMatchStrength      = 30
	contentReadyThreshold = 50
	maxContentAngles      = 3
)

// typeAlignments maps each trigger type to the trend primary-trigger labels
// it resonates with. A hit earns the type bonus.
var typeAlignments = map[domain.TriggerType][]string{
	domain.TriggerPainPoint:   {"pain", "pain_point", "frustration", "problem"},
	domain.TriggerDesire:      {"desire", "aspiration", "opportunity", "gain"},
	domain.TriggerFear:        {"fear", "risk", "loss", "uncertainty"},
	domain.TriggerAspiration:  {"aspiration", "desire", "growth", "achievement"},
	domain.TriggerFrustration: {"frustration", "pain", "pain_point", "anger"},
}

// Matcher scores trends against customer triggers.
type Matcher struct {
	logger logger.Logger
}

// NewMatcher creates a trend matcher.
func NewMatcher(log logger.Logger) *Matcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Matcher{logger: log}
}

// MatchStrength scores the affinity between one trend and one trigger.
// Strength is always in [0,100] and exactly 0 when the two texts share no
// tokens.
func (m *Matcher) MatchStrength(trend domain.Trend, trigger domain.CustomerTrigger) domain.TriggerMatch {
	match := domain.TriggerMatch{Trigger: trigger}

	triggerTokens := textutil.Tokenize(trigger.Statement)
	if len(triggerTokens) == 0 {
		return match
	}

	trendSet := make(map[string]struct{})
	for _, t := range textutil.TokenizeWithPhrases(trend.Title + " " + trend.Description) {
		trendSet[t] = struct{}{}
	}

	matched := 0
	var connecting []string
	for _, tok := range triggerTokens {
		if _, ok := trendSet[tok]; ok {
			matched++
			connecting = append(connecting, tok)
		}
	}
	for i := 0; i+1 < len(triggerTokens); i++ {
		phrase := triggerTokens[i] + " " + triggerTokens[i+1]
		if _, ok := trendSet[phrase]; ok {
			connecting = append(connecting, phrase)
		}
	}

	if len(connecting) == 0 {
		return match
	}

	overlapRatio := float64(matched) / float64(len(triggerTokens))
	score := overlapRatio * overlapWeight
	if typeAligned(trigger.Type, trend.PrimaryTrigger) {
		score += typeBonus
	}
	score += float64(trigger.Intensity) / 100 * intensityWeight
	if trend.Validated {
		score += validationBonus
	}

	strength := int(math.Round(score))
	if strength > 100 {
		strength = 100
	}

	match.Strength = strength
	match.ConnectingKeywords = textutil.Dedupe(connecting)
	return match
}

func typeAligned(tt domain.TriggerType, primary string) bool {
	primary = strings.ToLower(strings.TrimSpace(primary))
	if primary == "" {
		return false
	}
	for _, label := range typeAlignments[tt] {
		if label == primary {
			return true
		}
	}
	return false
}

// MatchTrends scores every trend against every trigger, keeps matches at or
// above the minimum strength, and orders the results content-ready first,
// then by best-match strength descending, then by the supplied priority.
func (m *Matcher) MatchTrends(trends []domain.Trend, triggers []domain.CustomerTrigger) []domain.TrendMatchResult {
	results := make([]domain.TrendMatchResult, 0, len(trends))

	for _, trend := range trends {
		result := domain.TrendMatchResult{Trend: trend}

		var best *domain.TriggerMatch
		for _, trigger := range triggers {
			match := m.MatchStrength(trend, trigger)
			if match.Strength < minMatchStrength {
				continue
			}
			result.Matches = append(result.Matches, match)
			// Ties keep the first match.
			if best == nil || match.Strength > best.Strength {
				last := result.Matches[len(result.Matches)-1]
				best = &last
			}
		}

		if best != nil {
			result.BestStrength = best.Strength
			result.ContentReady = best.Strength >= contentReadyThreshold
			if result.ContentReady {
				result.ContentAngles = contentAngles(trend, *best)
			}
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].ContentReady != results[j].ContentReady {
			return results[i].ContentReady
		}
		if results[i].BestStrength != results[j].BestStrength {
			return results[i].BestStrength > results[j].BestStrength
		}
		return results[i].Trend.Priority > results[j].Trend.Priority
	})

	m.logger.Debug("trends matched",
		logger.Int("trends", len(trends)),
		logger.Int("triggers", len(triggers)),
		logger.Int("results", len(results)),
	)

	return results
}

// contentAngles generates ready-to-brief content angles for a content-ready
// trend from its best trigger match.
func contentAngles(trend domain.Trend, best domain.TriggerMatch) []string {
	var angles []string

	switch best.Trigger.Type {
	case domain.TriggerPainPoint, domain.TriggerFrustration:
		angles = append(angles,
			fmt.Sprintf("How %s changes the answer to %q", trend.Title, best.Trigger.Statement),
			fmt.Sprintf("Why teams still struggle with %s despite %s", lowerFirst(best.Trigger.Statement), trend.Title),
		)
	case domain.TriggerDesire, domain.TriggerAspiration:
		angles = append(angles,
			fmt.Sprintf("What %s means for teams that want %s", trend.Title, lowerFirst(best.Trigger.Statement)),
			fmt.Sprintf("Riding %s: a practical path to %s", trend.Title, lowerFirst(best.Trigger.Statement)),
		)
	case domain.TriggerFear:
		angles = append(angles,
			fmt.Sprintf("%s is accelerating: what it means if you worry about %s", trend.Title, lowerFirst(best.Trigger.Statement)),
		)
	}

	if len(best.ConnectingKeywords) > 0 {
		angles = append(angles,
			fmt.Sprintf("%s and %s: what the overlap tells us", trend.Title, best.ConnectingKeywords[0]))
	}

	if len(angles) > maxContentAngles {
		angles = angles[:maxContentAngles]
	}
	return angles
}

func lowerFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
