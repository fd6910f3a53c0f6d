package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

// cached serves key from the cache, falling back to load and storing the
// result. Cache failures never fail the request.
func cached[T any](ctx context.Context, cache domain.ResultCache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var value T
	if cache != nil {
		hit, err := cache.Get(ctx, key, &value)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("[CACHE] read failed, computing")
		} else if hit {
			return value, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, value, ttl); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("[CACHE] write failed")
		}
	}
	return value, nil
}

func invalidate(ctx context.Context, cache domain.ResultCache, prefixes ...string) {
	if cache == nil {
		return
	}
	for _, prefix := range prefixes {
		if err := cache.InvalidatePrefix(ctx, prefix); err != nil {
			logrus.WithError(err).WithField("prefix", prefix).Error("[CACHE] invalidation failed")
		}
	}
}
