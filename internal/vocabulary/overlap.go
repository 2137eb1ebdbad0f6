package vocabulary

import (
	"math"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/textutil"
)

// Overlap score weighting: coverage of the input text counts for 60%, the
// mean weight of the matched terms for 40%.
const (
	coverageWeight   = 0.6
	meanWeightWeight = 0.4
)

// OverlapScore measures how strongly a piece of text overlaps the brand
// vocabulary: min(1, coverage*0.6 + meanMatchedWeight*0.4), where coverage
// is matched/total tokens. Deterministic, no side effects; empty text or an
// empty vocabulary scores 0.
func OverlapScore(text string, vocab *domain.BrandVocabulary) float64 {
	if vocab == nil || len(vocab.Weights) == 0 {
		return 0
	}

	tokens := textutil.TokenizeWithPhrases(text)
	if len(tokens) == 0 {
		return 0
	}

	matched := 0
	weightSum := 0.0
	for _, tok := range tokens {
		if w, ok := vocab.Weights[tok]; ok {
			matched++
			weightSum += w
		}
	}
	if matched == 0 {
		return 0
	}

	coverage := float64(matched) / float64(len(tokens))
	meanWeight := weightSum / float64(matched)
	return math.Min(1, coverage*coverageWeight+meanWeight*meanWeightWeight)
}
