// Package fuzzy provides edit-distance string similarity and alias-index
// resolution shared by competitor attribution and other lookups.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the minimum similarity for a fuzzy alias match.
const DefaultThreshold = 0.7

// Similarity returns the normalized edit-distance similarity of two
// strings in [0,1]: 1 - levenshtein(a,b)/max(len(a),len(b)).
// Two empty strings are identical (1); empty vs non-empty is 0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// Match is the best alias found for an input.
type Match struct {
	Alias      string
	Similarity float64
}

// BestMatch scans candidates and returns the highest-similarity candidate
// at or above threshold. An exact (case-insensitive) hit short-circuits at
// similarity 1.0. The second return is false when nothing clears the
// threshold; empty inputs simply produce no match, never an error.
func BestMatch(input string, candidates []string, threshold float64) (Match, bool) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Match{}, false
	}

	for _, c := range candidates {
		if strings.ToLower(strings.TrimSpace(c)) == normalized {
			return Match{Alias: c, Similarity: 1}, true
		}
	}

	best := Match{Similarity: -1}
	for _, c := range candidates {
		if s := Similarity(normalized, c); s > best.Similarity {
			best = Match{Alias: c, Similarity: s}
		}
	}
	if best.Similarity < threshold {
		return Match{}, false
	}
	return best, true
}
