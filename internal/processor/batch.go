// Package processor runs signal classification over batches with a worker
// pool and rate limiting. Each signal is independent, so order of results
// follows input order regardless of worker scheduling.
package processor

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/signals"
	"github.com/brandsight/signal-engine/internal/telemetry"
)

const defaultConcurrency = 10

// BatchProcessor classifies signal batches in parallel using a worker pool.
type BatchProcessor struct {
	classifier  *signals.Classifier
	limiter     *RateLimiter
	telemetry   *telemetry.Provider
	concurrency int
	logger      logger.Logger
}

// NewBatchProcessor creates a batch processor. A nil limiter disables rate
// limiting; a nil telemetry provider disables metrics.
func NewBatchProcessor(classifier *signals.Classifier, limiter *RateLimiter, tel *telemetry.Provider, concurrency int, log logger.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &BatchProcessor{
		classifier:  classifier,
		limiter:     limiter,
		telemetry:   tel,
		concurrency: concurrency,
		logger:      log,
	}
}

// Process classifies a batch. Results are positionally aligned with the
// input; a cancelled context stops the workers and returns the context
// error with whatever was completed left in place.
func (b *BatchProcessor) Process(ctx context.Context, batch []domain.NationalSignal) ([]domain.NationalSignalResult, error) {
	if len(batch) == 0 {
		return []domain.NationalSignalResult{}, nil
	}

	start := time.Now()
	b.logger.Info("starting batch classification",
		logger.Int("batch_size", len(batch)),
		logger.Int("concurrency", b.concurrency),
	)
	ctx, endSpan := b.startBatchSpan(ctx, len(batch))
	defer endSpan()

	if b.telemetry != nil {
		b.telemetry.RecordBatchSize(len(batch))
		b.telemetry.SetQueueDepth(len(batch))
		b.telemetry.SetActiveWorkers(b.concurrency)
		defer func() {
			b.telemetry.SetQueueDepth(0)
			b.telemetry.SetActiveWorkers(0)
		}()
	}

	type job struct {
		index  int
		signal domain.NationalSignal
	}

	jobs := make(chan job, len(batch))
	results := make([]domain.NationalSignalResult, len(batch))

	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results[j.index] = b.classifyOne(ctx, j.signal)
			}
		}()
	}

	for i, s := range batch {
		jobs <- job{index: i, signal: s}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		// Workers bail on cancellation, leaving unclaimed jobs in the channel.
		for range jobs {
			if b.telemetry != nil {
				b.telemetry.IncrementWorkDropped()
			}
		}
		return results, err
	}

	b.logger.Info("batch classification complete",
		logger.Int("total", len(batch)),
		logger.Duration("duration", time.Since(start)),
	)
	return results, nil
}

// startBatchSpan opens a tracing span for the batch; no-op without
// telemetry.
func (b *BatchProcessor) startBatchSpan(ctx context.Context, size int) (context.Context, func()) {
	if b.telemetry == nil {
		return ctx, func() {}
	}
	ctx, span := b.telemetry.StartSpan(ctx, "classify_batch", attribute.Int("batch.size", size))
	return ctx, func() { span.End() }
}

func (b *BatchProcessor) classifyOne(ctx context.Context, signal domain.NationalSignal) domain.NationalSignalResult {
	if b.limiter != nil && !b.limiter.Allow() {
		if b.telemetry != nil {
			b.telemetry.IncrementThrottleCount()
		}
		if err := b.limiter.Wait(ctx); err != nil {
			// Cancelled mid-batch; the worker loop exits on the next check.
			return domain.NationalSignalResult{SignalID: signal.ID}
		}
	}

	start := time.Now()
	result := b.classifier.Classify(signal)

	if b.telemetry != nil {
		b.telemetry.RecordClassification(ctx, signal.Platform, string(result.Type), time.Since(start))
		if result.Churn != nil {
			b.telemetry.RecordChurn(ctx, string(result.Churn.Severity))
		}
	}
	return *result
}

// Concurrency reports the configured worker count.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
