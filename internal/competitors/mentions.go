package competitors

import (
	"regexp"
	"sort"
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// Mention extraction constants.
const (
	minAliasLen = 3

	confidenceExactCase  = 1.0
	confidenceExactAlias = 0.95
	confidenceLooseMatch = 0.8
	contextMargin        = 40

	primaryMentionWeight = 10.0
)

// ExtractMentions finds every competitor mention in text: a single
// automaton pass narrows the alias set, then each candidate alias is
// whole-word scanned for positions. Overlapping hits are deduplicated in
// position order, keeping the higher-confidence mention.
func (r *Registry) ExtractMentions(text string) []domain.CompetitorMention {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	candidates := r.candidateAliases(text)
	if len(candidates) == 0 {
		return nil
	}

	var mentions []domain.CompetitorMention
	for _, key := range candidates {
		r.mu.RLock()
		entry, ok := r.aliasIndex[key]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		mentions = append(mentions, scanAlias(text, key, entry)...)
	}

	return dedupeOverlaps(mentions)
}

// candidateAliases runs the Aho-Corasick automaton over the lowercased text
// and returns the alias keys that can possibly occur.
func (r *Registry) candidateAliases(text string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.matcher == nil {
		return nil
	}
	hits := r.matcher.Match([]byte(strings.ToLower(text)))
	keys := make([]string, 0, len(hits))
	for _, hit := range hits {
		if hit < len(r.aliases) {
			keys = append(keys, r.aliases[hit])
		}
	}
	sort.Strings(keys)
	return keys
}

// scanAlias whole-word scans one alias and grades each hit: exact casing
// 1.0, case-insensitive exact 0.95, anything looser 0.8.
func scanAlias(text, key string, entry aliasEntry) []domain.CompetitorMention {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
	if err != nil {
		return nil
	}

	var out []domain.CompetitorMention
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]

		confidence := confidenceLooseMatch
		switch {
		case matched == entry.alias:
			confidence = confidenceExactCase
		case strings.EqualFold(matched, entry.alias):
			confidence = confidenceExactAlias
		}

		out = append(out, domain.CompetitorMention{
			Name:        entry.canonical,
			MatchedText: matched,
			Position:    loc[0],
			Confidence:  confidence,
			MentionType: entry.mentionType,
			Context:     textutil.Excerpt(text, loc[0], loc[1], contextMargin, contextMargin),
		})
	}
	return out
}

// dedupeOverlaps scans mentions in position order and keeps the
// higher-confidence mention whenever spans overlap.
func dedupeOverlaps(mentions []domain.CompetitorMention) []domain.CompetitorMention {
	if len(mentions) < 2 {
		return mentions
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		if mentions[i].Position != mentions[j].Position {
			return mentions[i].Position < mentions[j].Position
		}
		return mentions[i].Confidence > mentions[j].Confidence
	})

	out := mentions[:0:0]
	for _, m := range mentions {
		if len(out) == 0 {
			out = append(out, m)
			continue
		}
		last := &out[len(out)-1]
		if m.Position < last.Position+len(last.MatchedText) {
			// Overlap: keep the stronger hit.
			if m.Confidence > last.Confidence {
				*last = m
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// PrimaryCompetitor returns the canonical name scoring highest on
// mentionCount*10 + maxConfidence, or "" when there are no mentions.
func PrimaryCompetitor(mentions []domain.CompetitorMention) string {
	if len(mentions) == 0 {
		return ""
	}

	type stats struct {
		count         int
		maxConfidence float64
	}
	byName := make(map[string]*stats)
	order := make([]string, 0)
	for _, m := range mentions {
		s, ok := byName[m.Name]
		if !ok {
			s = &stats{}
			byName[m.Name] = s
			order = append(order, m.Name)
		}
		s.count++
		if m.Confidence > s.maxConfidence {
			s.maxConfidence = m.Confidence
		}
	}

	best := ""
	bestScore := -1.0
	for _, name := range order {
		s := byName[name]
		score := float64(s.count)*primaryMentionWeight + s.maxConfidence
		if score > bestScore {
			best = name
			bestScore = score
		}
	}
	return best
}

// Analyze runs the full attribution pipeline on one text.
func (r *Registry) Analyze(text string) *domain.CompetitorAnalysis {
	mentions := r.ExtractMentions(text)
	return &domain.CompetitorAnalysis{
		Mentions:          mentions,
		Displacement:      ClassifyDisplacement(text),
		PrimaryCompetitor: PrimaryCompetitor(mentions),
	}
}
