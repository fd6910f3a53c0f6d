package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var _ domain.ExerciseCatalog = (*CachedExerciseCatalog)(nil)

// CachedExerciseCatalog serves the name list from the result cache and drops
// it whenever the catalog changes.
type CachedExerciseCatalog struct {
	next  domain.ExerciseCatalog
	cache domain.ResultCache
}

func NewCachedExerciseCatalog(next domain.ExerciseCatalog, cache domain.ResultCache) *CachedExerciseCatalog {
	return &CachedExerciseCatalog{
		next:  next,
		cache: cache,
	}
}

func (c *CachedExerciseCatalog) invalidate(ctx context.Context) {
	if err := c.cache.InvalidatePrefix(ctx, domain.CacheKeyExerciseNames); err != nil {
		logrus.WithError(err).Error("[CACHE] failed to invalidate exercise names")
	}
}

func (c *CachedExerciseCatalog) Names(ctx context.Context) ([]string, error) {
	var names []string
	hit, err := c.cache.Get(ctx, domain.CacheKeyExerciseNames, &names)
	if err != nil {
		logrus.WithError(err).Warn("[CACHE] read error on exercise names")
	} else if hit && names != nil {
		return names, nil
	}

	names, err = c.next.Names(ctx)
	if err != nil {
		return nil, err
	}

	if setErr := c.cache.Set(ctx, domain.CacheKeyExerciseNames, names, domain.ExerciseNamesTTL); setErr != nil {
		logrus.WithError(setErr).Warn("[CACHE] write error on exercise names")
	}
	return names, nil
}

func (c *CachedExerciseCatalog) Top(ctx context.Context, limit int) ([]*domain.ExerciseRecord, error) {
	return c.next.Top(ctx, limit)
}

func (c *CachedExerciseCatalog) Upsert(ctx context.Context, rec *domain.ExerciseRecord) error {
	if err := c.next.Upsert(ctx, rec); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}
