// Package vocabulary turns a brand profile into a weighted term dictionary
// and scores arbitrary text against it.
package vocabulary

import (
	"errors"
	"strings"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// ErrEmptyProfile is returned when the profile carries no narrative to
// extract from. This is the one precondition violation in the pipeline;
// individual missing fields simply skip that extraction source.
var ErrEmptyProfile = errors.New("vocabulary: brand profile is empty")

// Term weights by bucket. Brand terms always override; secondary and
// region weights never overwrite an existing entry.
const (
	weightPrimary   = 1.0
	weightIndustry  = 0.8
	weightSecondary = 0.7
	weightRegion    = 0.6
	weightBrand     = 1.0
)

// Extractor builds BrandVocabulary values from brand profiles. The industry
// and region tables start from the built-in catalogs and can be extended at
// startup, before concurrent use begins.
type Extractor struct {
	logger   logger.Logger
	industry []patternEntry
	region   []patternEntry
}

// NewExtractor creates a vocabulary extractor.
func NewExtractor(log logger.Logger) *Extractor {
	if log == nil {
		log = logger.NewNop()
	}
	return &Extractor{
		logger:   log,
		industry: industryPatterns,
		region:   regionPatterns,
	}
}

// ExtendIndustryTerms appends startup-loaded terms to the industry table,
// keyed by bucket name. New buckets become new entries.
func (e *Extractor) ExtendIndustryTerms(byKey map[string][]string) {
	e.industry = extendTable(e.industry, byKey)
}

// ExtendRegionTerms appends startup-loaded terms to the region table.
func (e *Extractor) ExtendRegionTerms(byKey map[string][]string) {
	e.region = extendTable(e.region, byKey)
}

func extendTable(table []patternEntry, byKey map[string][]string) []patternEntry {
	out := make([]patternEntry, len(table))
	copy(out, table)

	for key, terms := range byKey {
		if len(terms) == 0 {
			continue
		}
		found := false
		for i := range out {
			if out[i].name == key {
				merged := append([]string{}, out[i].patterns...)
				merged = append(merged, terms...)
				out[i].patterns = textutil.Dedupe(merged)
				found = true
				break
			}
		}
		if !found {
			out = append(out, patternEntry{name: key, patterns: textutil.Dedupe(terms)})
		}
	}
	return out
}

// Extract walks every narrative field of the profile and buckets the
// resulting terms as primary, secondary, industry, region and brand.
func (e *Extractor) Extract(profile *domain.BrandProfile) (*domain.BrandVocabulary, error) {
	if profile.IsEmpty() {
		return nil, ErrEmptyProfile
	}

	vocab := &domain.BrandVocabulary{
		Weights: make(map[string]float64),
	}

	vocab.PrimaryTerms = textutil.Dedupe(termsFromTexts(
		profile.TargetCustomer.Statement,
		profile.KeyBenefit.Statement,
		profile.UniqueSolution.Statement,
		profile.Transformation.Why,
		profile.Transformation.How,
		profile.ValueProposition,
	))

	secondary := termsFromTexts(
		profile.Transformation.Before,
		profile.Transformation.After,
	)
	secondary = append(secondary, termsFromTexts(profile.KeyBenefit.Evidence...)...)
	secondary = append(secondary, termsFromTexts(profile.EmotionalDrivers...)...)
	secondary = append(secondary, termsFromTexts(profile.FunctionalDrivers...)...)
	secondary = append(secondary, termsFromTexts(profile.UniqueSolution.Differentiators...)...)
	for _, q := range profile.CustomerQuotes {
		secondary = append(secondary, textutil.TokenizeWithPhrases(q.Text)...)
	}
	vocab.SecondaryTerms = textutil.Dedupe(secondary)

	vocab.IndustryTerms = matchPatternTable(e.industry, profileText(profile), profile.TargetCustomer.Industry)
	vocab.RegionTerms = matchPatternTable(e.region, profileText(profile), profile.TargetCustomer.Region)
	vocab.BrandTerms = brandVariants(profile.BrandName)

	// Weight precedence: primary > industry > secondary > region, with
	// brand terms overriding everything. Primary terms keep 1.0 even when
	// an industry pattern collides with them.
	for _, t := range vocab.PrimaryTerms {
		vocab.Weights[t] = weightPrimary
	}
	for _, t := range vocab.IndustryTerms {
		if _, ok := vocab.Weights[t]; !ok {
			vocab.Weights[t] = weightIndustry
		}
	}
	for _, t := range vocab.SecondaryTerms {
		if _, ok := vocab.Weights[t]; !ok {
			vocab.Weights[t] = weightSecondary
		}
	}
	for _, t := range vocab.RegionTerms {
		if _, ok := vocab.Weights[t]; !ok {
			vocab.Weights[t] = weightRegion
		}
	}
	for _, t := range vocab.BrandTerms {
		vocab.Weights[t] = weightBrand
	}

	all := make([]string, 0,
		len(vocab.PrimaryTerms)+len(vocab.SecondaryTerms)+
			len(vocab.IndustryTerms)+len(vocab.RegionTerms)+len(vocab.BrandTerms))
	all = append(all, vocab.PrimaryTerms...)
	all = append(all, vocab.SecondaryTerms...)
	all = append(all, vocab.IndustryTerms...)
	all = append(all, vocab.RegionTerms...)
	all = append(all, vocab.BrandTerms...)
	vocab.AllTerms = textutil.Dedupe(all)

	e.logger.Debug("vocabulary extracted",
		logger.String("brand", profile.BrandName),
		logger.Int("primary", len(vocab.PrimaryTerms)),
		logger.Int("secondary", len(vocab.SecondaryTerms)),
		logger.Int("industry", len(vocab.IndustryTerms)),
		logger.Int("region", len(vocab.RegionTerms)),
		logger.Int("total", len(vocab.AllTerms)),
	)

	return vocab, nil
}

func termsFromTexts(texts ...string) []string {
	var terms []string
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		terms = append(terms, textutil.TokenizeWithPhrases(t)...)
	}
	return terms
}

// profileText concatenates the narrative fields used for pattern-table
// matching.
func profileText(p *domain.BrandProfile) string {
	parts := []string{
		p.ValueProposition,
		p.TargetCustomer.Statement,
		p.TargetCustomer.Industry,
		p.TargetCustomer.Region,
		p.Transformation.Before,
		p.Transformation.After,
		p.UniqueSolution.Statement,
		p.KeyBenefit.Statement,
	}
	for _, cat := range p.Catalog {
		parts = append(parts, cat.Name)
		for _, item := range cat.Items {
			parts = append(parts, item.Name, item.Description)
		}
	}
	return strings.Join(parts, " ")
}

// matchPatternTable returns every pattern of every table entry that has at
// least one pattern present in the text. Matching one pattern of an entry
// pulls in the entry's full pattern set.
func matchPatternTable(table []patternEntry, texts ...string) []string {
	combined := textutil.Fold(strings.Join(texts, " "))
	var out []string
	for _, entry := range table {
		for _, pattern := range entry.patterns {
			if strings.Contains(combined, pattern) {
				out = append(out, entry.patterns...)
				break
			}
		}
	}
	return textutil.Dedupe(out)
}

// brandVariants returns the brand name plus its word-split and no-space
// variants, normalized.
func brandVariants(name string) []string {
	name = strings.TrimSpace(textutil.Fold(name))
	if name == "" {
		return nil
	}
	variants := []string{name}
	words := strings.Fields(name)
	if len(words) > 1 {
		variants = append(variants, words...)
		variants = append(variants, strings.Join(words, ""))
	}
	return textutil.Dedupe(variants)
}
