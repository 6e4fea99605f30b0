// Package ratelimiter throttles calls to the external market-data API.
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// Limiter gates an operation so it stays under the provider's
// request-per-interval quota.
type Limiter interface {
	WaitIfNeeded()
}

// RateLimiter allows up to limit calls per interval and blocks the
// caller until the next interval once the quota is spent. Safe for use
// from concurrent requests.
type RateLimiter struct {
	limit    int
	interval time.Duration

	// Clock hooks, swapped out in tests.
	now   func() time.Time
	sleep func(time.Duration)

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a RateLimiter with the given per-interval
// quota.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		now:       time.Now,
		sleep:     time.Sleep,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current call fits inside the quota.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		wait := rl.interval - now.Sub(rl.lastReset)
		if wait > 0 {
			slog.Info("rate limit reached, waiting", "limit", rl.limit, "wait", wait)
			rl.sleep(wait)
		}
		rl.count = 1
		rl.lastReset = rl.now()
	}
}
