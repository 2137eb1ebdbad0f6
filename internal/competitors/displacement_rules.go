package competitors

import (
	"regexp"

	"github.com/brandsight/signal-engine/internal/domain"
)

// displacementFamily pairs a displacement label with its patterns.
// Families are evaluated in order and the first family with any matching
// pattern wins; families are never combined.
type displacementFamily struct {
	label    domain.DisplacementType
	patterns []*regexp.Regexp
}

var displacementFamilies = []displacementFamily{
	{domain.DisplacementSwitchingFrom, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:switch(?:ed|ing)?|mov(?:ed|ing)|migrat(?:ed|ing|e))\s+(?:away\s+)?from\b`),
		regexp.MustCompile(`(?i)\b(?:leaving|left|ditch(?:ed|ing)?|dropp(?:ed|ing))\b`),
		regexp.MustCompile(`(?i)\bcancel(?:led|ed|ing)?\s+(?:our|my|the)\b`),
	}},
	{domain.DisplacementSwitchingTo, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:switch(?:ed|ing)?|mov(?:ed|ing)|migrat(?:ed|ing|e))\s+(?:over\s+)?to\b`),
		regexp.MustCompile(`(?i)\b(?:adopt(?:ed|ing)?|signed\s+up\s+(?:for|with)|went\s+with)\b`),
		regexp.MustCompile(`(?i)\blooking\s+to\s+switch\b`),
	}},
	{domain.DisplacementComparing, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bvs\.?\b|\bversus\b`),
		regexp.MustCompile(`(?i)\bcompar(?:e|ed|ing|ison)\s+(?:to|with|against)?\b`),
		regexp.MustCompile(`(?i)\balternatives?\s+to\b`),
		regexp.MustCompile(`(?i)\bor\s+should\s+(?:i|we)\b`),
	}},
	{domain.DisplacementComplaint, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:frustrated|disappointed|fed\s+up|sick\s+of|tired\s+of)\b`),
		regexp.MustCompile(`(?i)\b(?:hate|terrible|awful|useless|worst)\b`),
		regexp.MustCompile(`(?i)\bnot\s+(?:worth|happy|satisfied)\b`),
	}},
}

// ClassifyDisplacement classifies competitor-switching language. The first
// family whose pattern matches wins; DisplacementNone when nothing matches.
func ClassifyDisplacement(text string) domain.DisplacementType {
	for _, fam := range displacementFamilies {
		for _, p := range fam.patterns {
			if p.MatchString(text) {
				return fam.label
			}
		}
	}
	return domain.DisplacementNone
}
