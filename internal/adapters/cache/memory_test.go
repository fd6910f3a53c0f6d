package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/progress-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

type manualTimer struct {
	now atomic.Uint32
}

func (t *manualTimer) Now() uint32 { return t.now.Load() }

func (t *manualTimer) advance(d time.Duration) {
	t.now.Add(uint32(d.Seconds()))
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(1)

	t.Run("Miss", func(t *testing.T) {
		var dest []string
		hit, err := c.Get(ctx, "absent", &dest)
		assert.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Round trip", func(t *testing.T) {
		stats := domain.ExerciseStats{MaxWeight: ptr(100.0), MaxReps: ptr(5)}
		require.NoError(t, c.Set(ctx, domain.ExerciseStatsKey("Bench"), stats, time.Minute))

		var got domain.ExerciseStats
		hit, err := c.Get(ctx, domain.ExerciseStatsKey("Bench"), &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, stats, got)
		assert.Nil(t, got.LastWeight)
	})

	t.Run("Undecodable value is dropped", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "bad", "not a list", time.Minute))

		var dest []int
		hit, err := c.Get(ctx, "bad", &dest)
		assert.Error(t, err)
		assert.False(t, hit)

		hit, err = c.Get(ctx, "bad", &dest)
		assert.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	timer := &manualTimer{}
	timer.now.Store(1_000)
	c := NewMemoryCacheWithTimer(1, timer)

	require.NoError(t, c.Set(ctx, domain.CacheKeyStatsOverview, 42, domain.StatsTTL))

	var v int
	timer.advance(domain.StatsTTL - time.Second)
	hit, err := c.Get(ctx, domain.CacheKeyStatsOverview, &v)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 42, v)

	timer.advance(2 * time.Second)
	hit, err = c.Get(ctx, domain.CacheKeyStatsOverview, &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCache_InvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(1)

	keys := []string{
		domain.CacheKeyStatsOverview,
		domain.CacheKeyWorkoutDates,
		domain.ExerciseTrendKey("Bench"),
		domain.ExerciseTrendKey("Squat"),
		domain.ExerciseStatsKey("Bench"),
		domain.CacheKeyExerciseNames,
	}
	for _, k := range keys {
		require.NoError(t, c.Set(ctx, k, k, time.Minute))
	}

	for _, prefix := range domain.SessionDerivedPrefixes {
		require.NoError(t, c.InvalidatePrefix(ctx, prefix))
	}

	for _, k := range keys[:5] {
		var v string
		hit, err := c.Get(ctx, k, &v)
		require.NoError(t, err)
		assert.False(t, hit, "%s should be gone", k)
	}

	var names string
	hit, err := c.Get(ctx, domain.CacheKeyExerciseNames, &names)
	require.NoError(t, err)
	assert.True(t, hit, "names are not derived from sessions directly")
}

func TestExpireSeconds(t *testing.T) {
	assert.Equal(t, 0, expireSeconds(0))
	assert.Equal(t, 1, expireSeconds(10*time.Millisecond))
	assert.Equal(t, 300, expireSeconds(300*time.Second))
	assert.Equal(t, 2, expireSeconds(1500*time.Millisecond))
}

func ptr[T any](v T) *T {
	return &v
}

func yearOfSessions() []*domain.Session {
	start := time.Date(2023, 1, 1, 18, 0, 0, 0, time.UTC)
	sessions := make([]*domain.Session, 0, 365)
	for i := range 365 {
		bw := 80 + float64(i%20)/10
		sessions = append(sessions, &domain.Session{
			ID:          fmt.Sprintf("session-%03d", i),
			Date:        start.AddDate(0, 0, i),
			BodyWeight:  &bw,
			WorkoutType: domain.WorkoutTypePush,
			Workout: []domain.SessionExercise{
				{Name: "Bench Press", Sets: []domain.Set{{Weight: 100.5, Reps: 5}, {Weight: 92.5, Reps: 8}}},
				{Name: "Overhead Press", Sets: []domain.Set{{Weight: 55, Reps: 6}}},
			},
		})
	}
	return sessions
}

func TestMemoryCache_YearlyOverviewFits(t *testing.T) {
	ctx := context.Background()
	cal := domain.NewCalendar(time.UTC)

	top := make([]*domain.ExerciseRecord, 0, domain.DefaultTopExercises)
	for i := range domain.DefaultTopExercises {
		top = append(top, &domain.ExerciseRecord{Name: fmt.Sprintf("Exercise %d", i), MaxWeight: 100, MaxReps: 5})
	}
	overview := analytics.Overview(cal, yearOfSessions(), top, time.Date(2023, 12, 31, 20, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(overview)
	require.NoError(t, err)
	require.Greater(t, len(raw), MaxEntryBytes(16), "a year of series outgrows a 16 MB cache")
	require.Less(t, len(raw), MaxEntryBytes(MinSizeMB))

	c := NewMemoryCache(MinSizeMB)
	require.NoError(t, c.Set(ctx, domain.CacheKeyStatsOverview, overview, domain.StatsTTL))

	var got domain.StatsOverview
	hit, err := c.Get(ctx, domain.CacheKeyStatsOverview, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 365, got.Summary.TotalSessions)
	assert.Len(t, got.BodyWeightSeries, 365)
	assert.Len(t, got.VolumeByDate, 365)
	assert.Len(t, got.WorkoutDates, 365)

	small := NewMemoryCache(16)
	assert.Error(t, small.Set(ctx, domain.CacheKeyStatsOverview, overview, domain.StatsTTL))
}

func TestCacheSizeDefaults(t *testing.T) {
	assert.Equal(t, DefaultSizeMB*megabyte, cacheSize(0))
	assert.Equal(t, 64*1024, MaxEntryBytes(MinSizeMB))
}
