// Package domain defines the core types exchanged between the signal
// intelligence components: brand profiles, vocabularies, triggers,
// competitor mentions, reviews, national signals and verification results.
package domain

// BrandProfile is the structured value-proposition description of a brand
// (the "complete UVP"). It is owned by the calling layer and treated as
// immutable input by every extractor.
type BrandProfile struct {
	BrandName         string            `json:"brand_name"`
	ValueProposition  string            `json:"value_proposition,omitempty"`
	TargetCustomer    TargetCustomer    `json:"target_customer"`
	Transformation    Transformation    `json:"transformation"`
	UniqueSolution    UniqueSolution    `json:"unique_solution"`
	KeyBenefit        KeyBenefit        `json:"key_benefit"`
	EmotionalDrivers  []string          `json:"emotional_drivers,omitempty"`
	FunctionalDrivers []string          `json:"functional_drivers,omitempty"`
	CustomerQuotes    []CustomerQuote   `json:"customer_quotes,omitempty"`
	Catalog           []CatalogCategory `json:"catalog,omitempty"`
}

// TargetCustomer describes who the brand sells to.
type TargetCustomer struct {
	Statement string `json:"statement"`
	Industry  string `json:"industry,omitempty"`
	Role      string `json:"role,omitempty"`
	Region    string `json:"region,omitempty"`
}

// Transformation captures the before/after story of the brand's offer.
type Transformation struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
	Why    string `json:"why,omitempty"`
	How    string `json:"how,omitempty"`
}

// UniqueSolution describes what makes the offer different.
type UniqueSolution struct {
	Statement       string   `json:"statement,omitempty"`
	Differentiators []string `json:"differentiators,omitempty"`
}

// KeyBenefit is the single strongest promise, with optional evidence quotes.
type KeyBenefit struct {
	Statement string   `json:"statement,omitempty"`
	Evidence  []string `json:"evidence,omitempty"`
}

// CustomerQuote is a verbatim customer statement with an emotional weight
// (0-100) assigned upstream.
type CustomerQuote struct {
	Text            string `json:"text"`
	EmotionalWeight int    `json:"emotional_weight"`
}

// CatalogCategory groups product/service items.
type CatalogCategory struct {
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items,omitempty"`
}

// CatalogItem is a single product or service.
type CatalogItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// IsEmpty reports whether the profile carries no usable narrative at all.
// An entirely absent profile is the one hard precondition violation in the
// extraction pipeline.
func (p *BrandProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.BrandName == "" &&
		p.ValueProposition == "" &&
		p.TargetCustomer.Statement == "" &&
		p.Transformation.Before == "" &&
		p.Transformation.After == "" &&
		p.UniqueSolution.Statement == "" &&
		p.KeyBenefit.Statement == "" &&
		len(p.Catalog) == 0
}
