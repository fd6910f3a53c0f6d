package cache

import (
	"context"
	"time"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
	"github.com/comitanigiacomo/progress-tracker/internal/metrics"
)

var _ domain.ResultCache = (*InstrumentedCache)(nil)

// InstrumentedCache counts lookups by outcome and prefix invalidations.
type InstrumentedCache struct {
	next    domain.ResultCache
	metrics *metrics.Manager
}

func NewInstrumentedCache(next domain.ResultCache, m *metrics.Manager) *InstrumentedCache {
	return &InstrumentedCache{next: next, metrics: m}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	hit, err := c.next.Get(ctx, key, dest)
	switch {
	case err != nil:
		c.metrics.CounterCacheLookups.WithLabelValues(metrics.CacheError).Inc()
	case hit:
		c.metrics.CounterCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	default:
		c.metrics.CounterCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}
	return hit, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.next.Set(ctx, key, value, ttl)
}

func (c *InstrumentedCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	c.metrics.CounterCacheInvalidations.Inc()
	return c.next.InvalidatePrefix(ctx, prefix)
}
