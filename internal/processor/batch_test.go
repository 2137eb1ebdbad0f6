package processor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/signals"
)

func testProcessor(concurrency int) *BatchProcessor {
	registry := competitors.NewRegistry(logger.NewNop())
	registry.Register(domain.CompetitorAlias{CanonicalName: "Acme"})
	classifier := signals.NewClassifier(registry, logger.NewNop())
	return NewBatchProcessor(classifier, nil, nil, concurrency, logger.NewNop())
}

func TestProcess_Empty(t *testing.T) {
	results, err := testProcessor(4).Process(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcess_PreservesOrder(t *testing.T) {
	batch := []domain.NationalSignal{
		{ID: "s1", Text: "We cancelled our subscription", Platform: "g2", Timestamp: time.Now()},
		{ID: "s2", Text: "Any recommendations for a CRM?", Platform: "reddit", Timestamp: time.Now()},
		{ID: "s3", Text: "Product A has a nicer UI", Platform: "x", Timestamp: time.Now()},
	}

	results, err := testProcessor(2).Process(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "s1", results[0].SignalID)
	assert.Equal(t, domain.SignalChurnAnnouncement, results[0].Type)
	assert.Equal(t, "s2", results[1].SignalID)
	assert.Equal(t, domain.SignalRecommendationAsk, results[1].Type)
	assert.Equal(t, "s3", results[2].SignalID)
	assert.Equal(t, domain.SignalFeatureComparison, results[2].Type)
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := make([]domain.NationalSignal, 50)
	for i := range batch {
		batch[i] = domain.NationalSignal{ID: "s", Text: "text", Timestamp: time.Now()}
	}

	_, err := testProcessor(4).Process(ctx, batch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 1, logger.NewNop())

	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow(), "burst of one is spent")
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	rl := NewRateLimiter(1, 1, logger.NewNop())
	require.True(t, rl.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, rl.Wait(ctx))
}
