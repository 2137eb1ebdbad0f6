package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
)

func insuranceProfile() *domain.BrandProfile {
	return &domain.BrandProfile{
		BrandName:        "ClaimPilot AI",
		ValueProposition: "Automated claims triage for regional insurers",
		TargetCustomer: domain.TargetCustomer{
			Statement: "Claims managers at mid-size insurance carriers",
			Industry:  "insurance",
			Region:    "canada",
			Role:      "Claims Manager",
		},
		Transformation: domain.Transformation{
			Before: "Adjusters wasting hours retyping claim details",
			After:  "Claims settled in days with automated triage",
			Why:    "Manual claims intake is slow and error prone",
			How:    "AI reads claim documents and routes them instantly",
		},
		UniqueSolution: domain.UniqueSolution{
			Statement:       "The only triage engine built for property claims",
			Differentiators: []string{"No-code setup", "Carrier-grade audit trail"},
		},
		KeyBenefit: domain.KeyBenefit{
			Statement: "Cut claim cycle time in half",
			Evidence:  []string{"We closed claims 40 percent faster in month one"},
		},
		Catalog: []domain.CatalogCategory{
			{Name: "Products", Items: []domain.CatalogItem{
				{Name: "AI Claims Assistant", Description: "Automate claim intake and routing"},
			}},
		},
	}
}

func TestExtract_Buckets(t *testing.T) {
	ex := NewExtractor(logger.NewNop())

	vocab, err := ex.Extract(insuranceProfile())
	require.NoError(t, err)

	assert.Contains(t, vocab.PrimaryTerms, "claims")
	assert.Contains(t, vocab.IndustryTerms, "underwriting", "matched industry pulls in its full pattern set")
	assert.Contains(t, vocab.RegionTerms, "ontario", "matched region pulls in its full pattern set")
	assert.Contains(t, vocab.BrandTerms, "claimpilot ai")
	assert.Contains(t, vocab.BrandTerms, "claimpilotai", "no-space variant")
	assert.Contains(t, vocab.BrandTerms, "claimpilot", "word-split variant")
}

func TestExtract_WeightInvariant(t *testing.T) {
	ex := NewExtractor(logger.NewNop())

	vocab, err := ex.Extract(insuranceProfile())
	require.NoError(t, err)

	for _, term := range vocab.AllTerms {
		w, ok := vocab.Weights[term]
		assert.True(t, ok, "term %q missing weight", term)
		assert.Greater(t, w, 0.0, "term %q weight must be positive", term)
		assert.LessOrEqual(t, w, 1.0, "term %q weight above 1.0", term)
	}
	for _, term := range vocab.PrimaryTerms {
		assert.Equal(t, 1.0, vocab.Weights[term], "primary term %q", term)
	}
	for _, term := range vocab.BrandTerms {
		assert.Equal(t, 1.0, vocab.Weights[term], "brand term %q", term)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	ex := NewExtractor(logger.NewNop())
	profile := insuranceProfile()

	first, err := ex.Extract(profile)
	require.NoError(t, err)
	second, err := ex.Extract(profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_EmptyProfile(t *testing.T) {
	ex := NewExtractor(logger.NewNop())

	_, err := ex.Extract(&domain.BrandProfile{})
	assert.ErrorIs(t, err, ErrEmptyProfile)
}

func TestExtract_MissingFieldsSkipped(t *testing.T) {
	ex := NewExtractor(logger.NewNop())

	vocab, err := ex.Extract(&domain.BrandProfile{
		BrandName: "Solo",
		KeyBenefit: domain.KeyBenefit{
			Statement: "Ship projects faster",
		},
	})
	require.NoError(t, err)

	assert.Empty(t, vocab.RegionTerms)
	assert.Contains(t, vocab.PrimaryTerms, "ship")
}
