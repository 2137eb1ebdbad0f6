// Package competitors resolves competitor identity in free text: an
// injectable alias registry, whole-word mention extraction with overlap
// dedup, displacement classification and fuzzy name resolution.
package competitors

import (
	"sort"
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/fuzzy"
	"github.com/brandsight/signal-engine/internal/logger"
)

// Registry is the alias index mapping every lowercase alias, canonical
// name and domain to its canonical name. Registration is expected at
// startup; lookups are safe to run concurrently once registration settles.
type Registry struct {
	mu sync.RWMutex
	// aliasIndex maps every lowercase alias to its entry; entries keeps the
	// original registrations by lowercase canonical name.
	aliasIndex map[string]aliasEntry
	entries    map[string]domain.CompetitorAlias
	aliases    []string // automaton pattern order
	matcher    *ahocorasick.Matcher
	logger     logger.Logger
}

type aliasEntry struct {
	canonical   string
	alias       string // alias in registered casing
	mentionType domain.MentionType
}

// NewRegistry creates an empty competitor registry.
func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewNop()
	}
	return &Registry{
		aliasIndex: make(map[string]aliasEntry),
		entries:    make(map[string]domain.CompetitorAlias),
		logger:     log,
	}
}

// Register adds one competitor. Re-registering an alias silently overwrites
// its mapping, so the last registration wins for that alias.
func (r *Registry) Register(comp domain.CompetitorAlias) {
	if strings.TrimSpace(comp.CanonicalName) == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[strings.ToLower(strings.TrimSpace(comp.CanonicalName))] = comp
	r.indexLocked(comp.CanonicalName, comp.CanonicalName, domain.MentionDirect)
	for _, alias := range comp.Aliases {
		r.indexLocked(alias, comp.CanonicalName, domain.MentionAlias)
	}
	if comp.Domain != "" {
		r.indexLocked(comp.Domain, comp.CanonicalName, domain.MentionDomain)
	}
	r.rebuildLocked()

	r.logger.Debug("competitor registered",
		logger.String("canonical", comp.CanonicalName),
		logger.Int("aliases", len(comp.Aliases)),
	)
}

// RegisterAll registers a brand's full competitor set in order, so later
// entries win alias collisions.
func (r *Registry) RegisterAll(comps []domain.CompetitorAlias) {
	for _, c := range comps {
		r.Register(c)
	}
}

func (r *Registry) indexLocked(alias, canonical string, mt domain.MentionType) {
	key := strings.ToLower(strings.TrimSpace(alias))
	if key == "" {
		return
	}
	r.aliasIndex[key] = aliasEntry{canonical: canonical, alias: strings.TrimSpace(alias), mentionType: mt}
}

// rebuildLocked reconstructs the Aho-Corasick automaton used to prefilter
// which aliases can occur in a text before the positional scan.
// MUST be called with r.mu held.
func (r *Registry) rebuildLocked() {
	r.aliases = r.aliases[:0]
	for key := range r.aliasIndex {
		if len(key) >= minAliasLen {
			r.aliases = append(r.aliases, key)
		}
	}
	if len(r.aliases) > 0 {
		r.matcher = ahocorasick.NewStringMatcher(r.aliases)
	} else {
		r.matcher = nil
	}
}

// Resolve maps any known alias (exact, case-insensitive) to its canonical
// name.
func (r *Registry) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.aliasIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return entry.canonical, true
}

// FuzzyResolve resolves a possibly-misspelled competitor name against the
// alias index: exact hits return similarity 1.0, otherwise the
// highest-similarity alias at or above threshold. Empty input is a plain
// no-match, never an error.
func (r *Registry) FuzzyResolve(name string, threshold float64) (string, float64, bool) {
	r.mu.RLock()
	candidates := make([]string, 0, len(r.aliasIndex))
	for key := range r.aliasIndex {
		candidates = append(candidates, key)
	}
	r.mu.RUnlock()

	match, ok := fuzzy.BestMatch(name, candidates, threshold)
	if !ok {
		return "", 0, false
	}
	canonical, ok := r.Resolve(match.Alias)
	if !ok {
		return "", 0, false
	}
	return canonical, match.Similarity, true
}

// Size returns the number of indexed aliases.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.aliasIndex)
}

// Entries returns the registered competitors ordered by canonical name.
func (r *Registry) Entries() []domain.CompetitorAlias {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CompetitorAlias, 0, len(r.entries))
	for _, comp := range r.entries {
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CanonicalName < out[j].CanonicalName
	})
	return out
}
