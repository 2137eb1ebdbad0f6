package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brandsight/signal-engine/internal/domain"
)

func TestOverlapScore(t *testing.T) {
	vocab := &domain.BrandVocabulary{
		Weights: map[string]float64{
			"claims":    1.0,
			"insurance": 0.8,
			"triage":    1.0,
		},
	}

	t.Run("full overlap saturates toward 1", func(t *testing.T) {
		score := OverlapScore("claims insurance triage", vocab)
		assert.Greater(t, score, 0.5)
		assert.LessOrEqual(t, score, 1.0)
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Equal(t, 0.0, OverlapScore("completely unrelated kitchen recipes", vocab))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, 0.0, OverlapScore("", vocab))
	})

	t.Run("nil vocabulary", func(t *testing.T) {
		assert.Equal(t, 0.0, OverlapScore("claims triage", nil))
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "insurance claims teams drowning in manual triage work"
		assert.Equal(t, OverlapScore(text, vocab), OverlapScore(text, vocab))
	})

	t.Run("bounded", func(t *testing.T) {
		score := OverlapScore("claims claims claims triage insurance", vocab)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}
