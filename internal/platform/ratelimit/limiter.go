// Package ratelimit wraps the limiter library behind a minimal interface so
// the in-memory store can be swapped for a distributed one without touching
// call sites.
package ratelimit

import (
	"context"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Limiter answers whether a keyed caller may proceed right now.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type storeLimiter struct {
	limiter *limiter.Limiter
}

// NewMemoryLimiter builds a Limiter over the in-memory store. The store
// evicts counters itself once their window expires. The rate format is
// "<limit>-<period>", e.g. "5-M" for five per minute.
func NewMemoryLimiter(rateFormat string) (Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		return nil, err
	}
	return &storeLimiter{limiter: limiter.New(memory.NewStore(), rate)}, nil
}

// New wraps an already-configured limiter instance (any store).
func New(instance *limiter.Limiter) Limiter {
	return &storeLimiter{limiter: instance}
}

func (l *storeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	lctx, err := l.limiter.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return !lctx.Reached, nil
}
