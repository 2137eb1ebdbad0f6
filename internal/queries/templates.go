package queries

import "github.com/brandsight/signal-engine/internal/domain"

// templateFamily is one fixed query template. {topic} and {year} are the
// only substitution keys. Families are ordered so the expansion spends the
// category budget on the strongest templates first.
type templateFamily struct {
	name          string
	format        string
	queryType     domain.QueryType
	priorityBoost int
}

var templateFamilies = []templateFamily{
	{name: "trend", format: "{topic} trends {year}", queryType: domain.QueryTypeNews, priorityBoost: 5},
	{name: "comparison", format: "best {topic} tools compared {year}", queryType: domain.QueryTypeSearch, priorityBoost: 4},
	{name: "problem", format: "{topic} problems and complaints", queryType: domain.QueryTypeSocial, priorityBoost: 3},
	{name: "opportunity", format: "{topic} opportunities {year}", queryType: domain.QueryTypeAI, priorityBoost: 2},
	{name: "how-to", format: "how to {topic}", queryType: domain.QueryTypeVideo, priorityBoost: 1},
}

// intentBasePriority orders categories: use-case queries outrank industry,
// industry outranks outcome, persona queries trail.
var intentBasePriority = map[domain.QueryIntent]int{
	domain.IntentUseCase: 80,
	domain.IntentTrend:   70,
	domain.IntentOutcome: 60,
	domain.IntentPersona: 50,
}
