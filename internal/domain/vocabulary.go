package domain

// BrandVocabulary is the weighted term dictionary extracted from a
// BrandProfile. Every term present in any typed bucket has a weight entry;
// primary and brand terms always carry weight 1.0, and brand terms override
// conflicting weights from other buckets.
type BrandVocabulary struct {
	PrimaryTerms   []string           `json:"primary_terms"`
	SecondaryTerms []string           `json:"secondary_terms"`
	IndustryTerms  []string           `json:"industry_terms"`
	RegionTerms    []string           `json:"region_terms"`
	BrandTerms     []string           `json:"brand_terms"`
	Weights        map[string]float64 `json:"weights"`
	AllTerms       []string           `json:"all_terms"`
}

// Weight returns the weight for a term, or 0 when the term is unknown.
func (v *BrandVocabulary) Weight(term string) float64 {
	if v == nil || v.Weights == nil {
		return 0
	}
	return v.Weights[term]
}
