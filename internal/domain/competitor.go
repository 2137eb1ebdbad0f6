package domain

// CompetitorAlias is a registry entry mapping a canonical competitor name to
// its known aliases and optional domain/category metadata.
type CompetitorAlias struct {
	CanonicalName string   `db:"canonical_name" json:"canonical_name"`
	Aliases       []string `db:"aliases"        json:"aliases,omitempty"`
	Domain        string   `db:"domain"         json:"domain,omitempty"`
	Category      string   `db:"category"       json:"category,omitempty"`
}

// MentionType describes how a competitor mention was resolved.
type MentionType string

// Mention type constants.
const (
	MentionDirect MentionType = "direct"
	MentionAlias  MentionType = "alias"
	MentionFuzzy  MentionType = "fuzzy"
	MentionDomain MentionType = "domain"
)

// CompetitorMention is one competitor hit found in free text. Position is a
// byte offset into the scanned text; Confidence is 0-1. Retained mentions
// never have overlapping [Position, Position+len(MatchedText)) spans.
type CompetitorMention struct {
	Name        string      `json:"name"`
	MatchedText string      `json:"matched_text"`
	Position    int         `json:"position"`
	Confidence  float64     `json:"confidence"`
	MentionType MentionType `json:"mention_type"`
	Context     string      `json:"context,omitempty"`
}

// DisplacementType classifies competitor-switching language.
type DisplacementType string

// Displacement type constants, in detection precedence order.
const (
	DisplacementSwitchingFrom DisplacementType = "switching-from"
	DisplacementSwitchingTo   DisplacementType = "switching-to"
	DisplacementComparing     DisplacementType = "comparing"
	DisplacementComplaint     DisplacementType = "complaint"
	DisplacementNone          DisplacementType = ""
)

// CompetitorAnalysis is the full attribution result for one text: every
// deduplicated mention, the displacement classification, and the primary
// competitor by mentionCount*10 + maxConfidence.
type CompetitorAnalysis struct {
	Mentions          []CompetitorMention `json:"mentions"`
	Displacement      DisplacementType    `json:"displacement,omitempty"`
	PrimaryCompetitor string              `json:"primary_competitor,omitempty"`
}
