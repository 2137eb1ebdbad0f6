package queries

import (
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// actionVerbs is the fixed list of universal action verbs scanned for in
// product/service text. Matching is by prefix so "automates"/"automating"
// hit "automate".
var actionVerbs = []string{
	"install", "repair", "schedule", "automate", "track", "manage",
	"monitor", "clean", "deliver", "inspect", "maintain", "book",
	"file", "process", "route", "analyze", "train", "migrate",
	"integrate", "assist", "dispatch", "estimate", "invoice", "onboard",
}

// ExtractUseCases scans catalog item names and descriptions for universal
// action verbs and pairs each hit with an adjacent context word. Results
// are deduplicated and capped at ten.
func ExtractUseCases(profile *domain.BrandProfile) []string {
	var out []string
	for _, cat := range profile.Catalog {
		for _, item := range cat.Items {
			out = append(out, useCasesFromText(item.Name)...)
			out = append(out, useCasesFromText(item.Description)...)
			if len(out) >= maxUseCases {
				break
			}
		}
	}
	out = textutil.Dedupe(out)
	if len(out) > maxUseCases {
		out = out[:maxUseCases]
	}
	return out
}

func useCasesFromText(text string) []string {
	words := strings.Fields(textutil.Normalize(text))
	var out []string
	for i, w := range words {
		verb, ok := matchActionVerb(w)
		if !ok {
			continue
		}
		context := adjacentContext(words, i)
		if context == "" {
			out = append(out, verb)
			continue
		}
		out = append(out, verb+" "+context)
	}
	return out
}

func matchActionVerb(word string) (string, bool) {
	for _, v := range actionVerbs {
		if strings.HasPrefix(word, v) {
			return v, true
		}
	}
	return "", false
}

// adjacentContext prefers the word after the verb, falling back to the word
// before it, skipping stop words in both directions.
func adjacentContext(words []string, i int) string {
	for j := i + 1; j < len(words); j++ {
		if !textutil.IsStopWord(words[j]) && len(words[j]) >= 3 {
			return words[j]
		}
	}
	for j := i - 1; j >= 0; j-- {
		if !textutil.IsStopWord(words[j]) && len(words[j]) >= 3 {
			return words[j]
		}
	}
	return ""
}
