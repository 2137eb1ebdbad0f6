package queries

import (
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// outcomeIndicators are the word families that mark an outcome statement.
// Matching is by prefix against normalized tokens.
var outcomeIndicators = []string{
	// reduction
	"reduce", "cut", "lower", "fewer", "eliminate",
	// increase
	"increase", "grow", "boost", "double", "improve",
	// speed
	"faster", "quick", "instant", "speed", "accelerate",
	// quality
	"better", "accurate", "reliable", "consistent",
	// scale
	"scale", "expand", "automate",
}

// problemInversions turn a detected "before" problem into the outcome a
// buyer is searching for, e.g. "wasting hours" becomes "save hours".
var problemInversions = []struct {
	prefix      string
	replacement string
}{
	{"wast", "save"},
	{"los", "recover"},
	{"miss", "capture"},
	{"delay", "accelerate"},
	{"drown", "eliminate"},
	{"struggl", "simplify"},
}

// ExtractOutcomes scans the transformation "after" text, differentiators
// and functional drivers for outcome-indicator families, and additionally
// inverts problems found in the "before" text into outcome phrases.
func ExtractOutcomes(profile *domain.BrandProfile) []string {
	var out []string

	sources := []string{profile.Transformation.After}
	sources = append(sources, profile.UniqueSolution.Differentiators...)
	sources = append(sources, profile.FunctionalDrivers...)
	for _, src := range sources {
		out = append(out, outcomesFromText(src)...)
	}

	out = append(out, invertProblems(profile.Transformation.Before)...)

	return textutil.Dedupe(out)
}

func outcomesFromText(text string) []string {
	words := strings.Fields(textutil.Normalize(text))
	var out []string
	for i, w := range words {
		if !matchIndicator(w) {
			continue
		}
		context := adjacentContext(words, i)
		if context == "" {
			out = append(out, w)
			continue
		}
		out = append(out, w+" "+context)
	}
	return out
}

func matchIndicator(word string) bool {
	for _, ind := range outcomeIndicators {
		if strings.HasPrefix(word, ind) {
			return true
		}
	}
	return false
}

func invertProblems(before string) []string {
	words := strings.Fields(textutil.Normalize(before))
	var out []string
	for i, w := range words {
		for _, inv := range problemInversions {
			if !strings.HasPrefix(w, inv.prefix) {
				continue
			}
			if context := adjacentContext(words, i); context != "" {
				out = append(out, inv.replacement+" "+context)
			}
			break
		}
	}
	return out
}
