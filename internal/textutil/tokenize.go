// Package textutil provides the shared tokenization used by every scoring
// and extraction component. All matchers operate on the same normalized
// token stream so scores stay comparable across components.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const minTokenLen = 3

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases text and strips diacritics so "Montréal" and "montreal"
// tokenize identically.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		// Fall back to the raw text; folding is best-effort.
		folded = text
	}
	return strings.ToLower(folded)
}

// Normalize lowercases, folds, and replaces every non-alphanumeric rune
// with a space, preserving word boundaries.
func Normalize(text string) string {
	text = Fold(text)

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else {
			result.WriteByte(' ')
		}
	}
	return result.String()
}

// Tokenize splits text into normalized single-word tokens, dropping stop
// words and tokens shorter than three characters.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLen || IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TokenizeWithPhrases returns single tokens plus adjacent 2-word phrases
// built from the surviving tokens.
func TokenizeWithPhrases(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// TokenSet returns the deduplicated token set of text.
func TokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range Tokenize(text) {
		set[t] = struct{}{}
	}
	return set
}

// Dedupe removes duplicates from a string slice, preserving first-seen
// order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Excerpt returns text around [start, end) padded by the given margins,
// clamped to the text bounds and trimmed of partial whitespace.
func Excerpt(text string, start, end, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := end + after
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(text[lo:hi])
}
