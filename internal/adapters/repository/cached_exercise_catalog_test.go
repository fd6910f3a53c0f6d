package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

type mapCache struct {
	values  map[string][]byte
	readErr error
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.readErr != nil {
		return false, c.readErr
	}
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *mapCache) InvalidatePrefix(_ context.Context, prefix string) error {
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
		}
	}
	return nil
}

type countingCatalog struct {
	*InMemoryExerciseCatalog
	namesCalls int
}

func (c *countingCatalog) Names(ctx context.Context) ([]string, error) {
	c.namesCalls++
	return c.InMemoryExerciseCatalog.Names(ctx)
}

func TestCachedExerciseCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Names are served from cache until the catalog changes", func(t *testing.T) {
		inner := &countingCatalog{InMemoryExerciseCatalog: NewInMemoryExerciseCatalog()}
		cache := &mapCache{values: map[string][]byte{}}
		catalog := NewCachedExerciseCatalog(inner, cache)

		require.NoError(t, catalog.Upsert(ctx, &domain.ExerciseRecord{Name: "Bench", MaxWeight: 80}))

		first, err := catalog.Names(ctx)
		require.NoError(t, err)
		second, err := catalog.Names(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"Bench"}, first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.namesCalls)

		require.NoError(t, catalog.Upsert(ctx, &domain.ExerciseRecord{Name: "Row", MaxWeight: 60}))

		third, err := catalog.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bench", "Row"}, third)
		assert.Equal(t, 2, inner.namesCalls)
	})

	t.Run("Cache read errors fall through to the catalog", func(t *testing.T) {
		inner := &countingCatalog{InMemoryExerciseCatalog: NewInMemoryExerciseCatalog()}
		cache := &mapCache{values: map[string][]byte{}, readErr: errors.New("redis down")}
		catalog := NewCachedExerciseCatalog(inner, cache)

		names, err := catalog.Names(ctx)

		require.NoError(t, err)
		assert.Empty(t, names)
		assert.Equal(t, 1, inner.namesCalls)
	})

	t.Run("Top is not cached", func(t *testing.T) {
		inner := NewInMemoryExerciseCatalog()
		catalog := NewCachedExerciseCatalog(inner, &mapCache{values: map[string][]byte{}})

		require.NoError(t, inner.Upsert(ctx, &domain.ExerciseRecord{Name: "Squat", MaxWeight: 150}))

		top, err := catalog.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "Squat", top[0].Name)
	})
}
