// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/domain/entity"
	"github.com/pepeyeme/ProyectoFinal/internal/feature/marketdata/usecase"
)

// CachingHistoryRepository decorates a HistoryRepository with Redis
// caching of per-symbol series. It implements the decorator pattern,
// transparently adding caching without modifying the underlying
// repository.
type CachingHistoryRepository struct {
	inner     usecase.HistoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.HistoryRepository = (*CachingHistoryRepository)(nil)

// NewCachingHistoryRepository decorates a HistoryRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "history". A nil Redis client disables caching and
// every call passes through.
func NewCachingHistoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.HistoryRepository, namespace string) *CachingHistoryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "history"
	}
	return &CachingHistoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// History retrieves one symbol's series, checking the cache first and
// falling back to the underlying repository.
func (c *CachingHistoryRepository) History(ctx context.Context, symbol, period string) ([]entity.PricePoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.History(ctx, symbol, period)
	}

	key := c.cacheKey(symbol, period)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.PricePoint
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.History(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort); empty series are not cached so a
	// transient provider gap does not stick for a full TTL.
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
		}
	}

	return out, nil
}

// HistoryMulti retrieves several symbols' series, serving each from the
// per-symbol cache where possible. A symbol whose fetch fails maps to
// an empty series rather than failing the whole batch.
func (c *CachingHistoryRepository) HistoryMulti(ctx context.Context, symbols []string, period string) (map[string][]entity.PricePoint, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.HistoryMulti(ctx, symbols, period)
	}

	out := make(map[string][]entity.PricePoint, len(symbols))
	for _, sym := range symbols {
		points, err := c.History(ctx, sym, period)
		if err != nil {
			out[sym] = []entity.PricePoint{}
			continue
		}
		out[sym] = points
	}
	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingHistoryRepository) cacheKey(symbol, period string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(symbol), safe(period))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
