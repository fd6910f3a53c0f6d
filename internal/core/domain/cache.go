package domain

import (
	"context"
	"time"
)

// ResultCache stores derived results under string keys with a TTL.
// Values are serialised, so Get decodes into dest.
type ResultCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// InvalidatePrefix drops every key starting with prefix.
	InvalidatePrefix(ctx context.Context, prefix string) error
}

const (
	CacheKeyExerciseNames    = "exercises:names"
	CachePrefixExerciseTrend = "exercises:trend:"
	CachePrefixExerciseStats = "exercises:stats:"
	CachePrefixStats         = "stats:"
	CacheKeyStatsOverview    = CachePrefixStats + "overview"
	CacheKeyWorkoutDates     = CachePrefixStats + "dates"

	ExerciseNamesTTL = 600 * time.Second
	ExerciseTrendTTL = 300 * time.Second
	ExerciseStatsTTL = 300 * time.Second
	StatsTTL         = 300 * time.Second
)

// SessionDerivedPrefixes are dropped on every session write.
var SessionDerivedPrefixes = []string{
	CachePrefixStats,
	CachePrefixExerciseTrend,
	CachePrefixExerciseStats,
}

func ExerciseTrendKey(name string) string {
	return CachePrefixExerciseTrend + name
}

func ExerciseStatsKey(name string) string {
	return CachePrefixExerciseStats + name
}
