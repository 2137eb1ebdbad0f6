package reviews

import (
	"regexp"
	"strings"
	"unicode"
)

// Excerpt margins around a theme hit.
const (
	excerptBefore = 20
	excerptAfter  = 60
)

const maxThemeKeyLen = 50

// painPatterns are the fixed lexical families scanned for pain points, one
// entry per family: frustration, speed, pricing, support, reliability,
// usability, features, maintenance, billing.
var painPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:frustrat\w+|annoying|painful|nightmare)\b`),
	regexp.MustCompile(`(?i)\b(?:too slow|slugg\w+|takes forever|lagg?\w*)\b`),
	regexp.MustCompile(`(?i)\b(?:too expensive|overpriced|pricey|costs? too much)\b`),
	regexp.MustCompile(`(?i)\b(?:terrible|poor|slow|unhelpful|useless)\s+(?:support|customer service)\b`),
	regexp.MustCompile(`(?i)\b(?:crash\w*|unreliable|outage\w*|buggy|keeps? breaking)\b`),
	regexp.MustCompile(`(?i)\b(?:confusing|hard to use|clunky|unintuitive|steep learning curve)\b`),
	regexp.MustCompile(`(?i)\b(?:missing|lacking|no)\s+(?:feature\w*|integration\w*|option\w*)\b`),
	regexp.MustCompile(`(?i)\b(?:manual work|workaround\w*|constant maintenance|babysit\w*)\b`),
	regexp.MustCompile(`(?i)\b(?:billing issue\w*|billing problem\w*|overcharg\w*|hidden fees|surprise charge\w*)\b`),
}

// desirePatterns are the fixed lexical families scanned for desires:
// wish, need, seeking, hope.
var desirePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwish\s+(?:it|they|there|we)\b[^.!?\n]{0,60}`),
	regexp.MustCompile(`(?i)\bneed\w*\s+(?:a|an|to|more|better)\b[^.!?\n]{0,60}`),
	regexp.MustCompile(`(?i)\b(?:looking for|seeking)\b[^.!?\n]{0,60}`),
	regexp.MustCompile(`(?i)\bhop(?:e|ing)\s+(?:for|they|it)\b[^.!?\n]{0,60}`),
}

// normalizeThemeKey lowercases, strips punctuation, collapses whitespace
// and truncates to 50 characters so near-identical phrasings group together.
func normalizeThemeKey(matched string) string {
	var b strings.Builder
	b.Grow(len(matched))
	for _, r := range strings.ToLower(matched) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	key := strings.Join(strings.Fields(b.String()), " ")
	if len(key) > maxThemeKeyLen {
		key = strings.TrimSpace(key[:maxThemeKeyLen])
	}
	return key
}
