package processor

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/brandsight/signal-engine/internal/logger"
)

const defaultRPS = 100

// RateLimiter throttles per-signal classification intake.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewRateLimiter creates a rate limiter. rps is operations per second;
// burst defaults to rps when non-positive.
func NewRateLimiter(rps, burst int, log logger.Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = rps
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  log,
	}
}

// Wait blocks until the rate limit allows the operation or the context is
// cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("rate limiter wait failed", logger.Error(err))
		return err
	}
	return nil
}

// Allow checks if an operation is allowed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}

// SetLimit updates the rate limit.
func (r *RateLimiter) SetLimit(rps int) {
	r.limiter.SetLimit(rate.Limit(rps))
	r.logger.Info("rate limit updated", logger.Int("new_rps", rps))
}
