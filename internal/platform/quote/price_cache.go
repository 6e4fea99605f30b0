// Package quote provides a time-bounded memoization of latest-price
// lookups.
package quote

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultFreshness is how long a cached quote stays valid.
const DefaultFreshness = 300 * time.Second

// PriceRepository resolves the most recent closing price for a symbol.
// Following Go convention: interfaces are defined by the consumer (quote cache), not the provider (adapters).
type PriceRepository interface {
	LatestClose(ctx context.Context, symbol string) (float64, error)
}

// cachedQuote is one memoized (price, timestamp) pair. At most one
// exists per ticker; a refresh overwrites it.
type cachedQuote struct {
	price     float64
	fetchedAt time.Time
}

// PriceCache decorates a PriceRepository with per-ticker memoization.
// Within the freshness window repeated lookups for a ticker make zero
// external calls and return the identical cached value. A failed lookup
// is not cached, so the next call retries.
//
// Two concurrent lookups for the same stale ticker may both hit the
// repository; the duplicate call is wasteful but harmless, and the
// later write simply overwrites the quote.
type PriceCache struct {
	repo      PriceRepository
	freshness time.Duration
	now       func() time.Time

	mu     sync.RWMutex
	quotes map[string]cachedQuote
}

// NewPriceCache creates a PriceCache over the given repository. A
// non-positive freshness falls back to the default of 300s. now is the
// clock used for freshness checks; nil means time.Now (tests inject a
// fake clock to exercise expiry deterministically).
func NewPriceCache(repo PriceRepository, freshness time.Duration, now func() time.Time) *PriceCache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	if now == nil {
		now = time.Now
	}
	return &PriceCache{
		repo:      repo,
		freshness: freshness,
		now:       now,
		quotes:    map[string]cachedQuote{},
	}
}

// LatestPrice returns the current price for ticker, served from the
// cache while fresh. ok is false when the underlying lookup fails; the
// stale entry (if any) is kept untouched so a later refresh can still
// succeed.
func (c *PriceCache) LatestPrice(ctx context.Context, ticker string) (float64, bool) {
	c.mu.RLock()
	q, hit := c.quotes[ticker]
	c.mu.RUnlock()

	if hit && c.now().Sub(q.fetchedAt) < c.freshness {
		return q.price, true
	}

	price, err := c.repo.LatestClose(ctx, ticker)
	if err != nil {
		slog.Warn("price lookup failed", "ticker", ticker, "error", err)
		return 0, false
	}

	c.mu.Lock()
	c.quotes[ticker] = cachedQuote{price: price, fetchedAt: c.now()}
	c.mu.Unlock()
	return price, true
}
