// Package queries synthesizes prioritized external-search queries from a
// brand profile and its extracted vocabulary.
package queries

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// Target distribution across query categories.
const (
	useCaseShare  = 0.4
	industryShare = 0.3
	outcomeShare  = 0.2
	personaShare  = 0.1
)

// defaultBudget is the approximate total batch size before dedup.
const defaultBudget = 40

const maxUseCases = 10

// Generator produces deduplicated, priority-sorted query batches. It is
// pure and network-free; the clock only feeds {year} substitution.
type Generator struct {
	logger logger.Logger
	budget int
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithBudget overrides the approximate batch size.
func WithBudget(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.budget = n
		}
	}
}

// WithClock overrides the clock used for {year} substitution.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator creates a query generator.
func NewGenerator(log logger.Logger, opts ...Option) *Generator {
	if log == nil {
		log = logger.NewNop()
	}
	g := &Generator{
		logger: log,
		budget: defaultBudget,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs the three extraction passes and expands every topic through
// the template families, targeting roughly 40% use-case, 30% industry,
// 20% outcome and 10% persona queries.
func (g *Generator) Generate(profile *domain.BrandProfile) []domain.GeneratedQuery {
	industry := strings.TrimSpace(textutil.Fold(profile.TargetCustomer.Industry))

	useCases := ExtractUseCases(profile)
	outcomes := ExtractOutcomes(profile)
	personas := ExtractPersonas(profile)

	year := fmt.Sprintf("%d", g.now().Year())

	var queries []domain.GeneratedQuery

	useCaseTopics := make([]topic, 0, len(useCases))
	for _, uc := range useCases {
		text := uc
		if industry != "" {
			text = industry + " " + uc
		}
		useCaseTopics = append(useCaseTopics, topic{text: text, keywords: []string{uc, industry}})
	}
	queries = append(queries, expand(useCaseTopics, domain.IntentUseCase, year, share(g.budget, useCaseShare))...)

	industryTopics := industryWithSynonyms(industry)
	queries = append(queries, expand(industryTopics, domain.IntentTrend, year, share(g.budget, industryShare))...)

	outcomeTopics := make([]topic, 0, len(outcomes))
	for _, o := range outcomes {
		outcomeTopics = append(outcomeTopics, topic{text: o, keywords: []string{o}})
	}
	queries = append(queries, expand(outcomeTopics, domain.IntentOutcome, year, share(g.budget, outcomeShare))...)

	personaTopics := make([]topic, 0, len(personas))
	for _, p := range personas {
		text := p
		if industry != "" {
			text = p + " " + industry
		}
		personaTopics = append(personaTopics, topic{text: text, keywords: []string{p, industry}})
	}
	queries = append(queries, expand(personaTopics, domain.IntentPersona, year, share(g.budget, personaShare))...)

	queries = dedupe(queries)
	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].Priority > queries[j].Priority
	})

	g.logger.Debug("queries generated",
		logger.String("brand", profile.BrandName),
		logger.Int("use_cases", len(useCases)),
		logger.Int("outcomes", len(outcomes)),
		logger.Int("personas", len(personas)),
		logger.Int("total", len(queries)),
	)

	return queries
}

type topic struct {
	text     string
	keywords []string
}

func share(budget int, fraction float64) int {
	n := int(float64(budget) * fraction)
	if n < 1 {
		n = 1
	}
	return n
}

// expand multiplies topics through the template families until the category
// budget is spent. Topics cycle in order so early topics get the
// higher-priority families first.
func expand(topics []topic, intent domain.QueryIntent, year string, limit int) []domain.GeneratedQuery {
	if len(topics) == 0 || limit <= 0 {
		return nil
	}

	base := intentBasePriority[intent]
	out := make([]domain.GeneratedQuery, 0, limit)
	for _, fam := range templateFamilies {
		for _, tp := range topics {
			if len(out) >= limit {
				return out
			}
			text := strings.ReplaceAll(fam.format, "{topic}", tp.text)
			text = strings.ReplaceAll(text, "{year}", year)

			keywords := make([]string, 0, len(tp.keywords))
			for _, kw := range tp.keywords {
				if kw != "" {
					keywords = append(keywords, kw)
				}
			}

			out = append(out, domain.GeneratedQuery{
				Query:          text,
				Type:           fam.queryType,
				Priority:       base + fam.priorityBoost,
				SourceKeywords: keywords,
				Intent:         intent,
			})
		}
	}
	return out
}

func industryWithSynonyms(industry string) []topic {
	if industry == "" {
		return nil
	}
	topics := []topic{{text: industry, keywords: []string{industry}}}
	for _, syn := range industrySynonyms[industry] {
		topics = append(topics, topic{text: syn, keywords: []string{industry, syn}})
	}
	return topics
}

// dedupe drops case-insensitive duplicate query text, keeping the first
// (highest-priority path) occurrence.
func dedupe(queries []domain.GeneratedQuery) []domain.GeneratedQuery {
	seen := make(map[string]struct{}, len(queries))
	out := make([]domain.GeneratedQuery, 0, len(queries))
	for _, q := range queries {
		key := strings.ToLower(strings.TrimSpace(q.Query))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}
