package services

import (
	"context"
	"strings"

	"github.com/comitanigiacomo/progress-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

const MaxTopExercises = 50

type ExerciseService struct {
	sessions domain.SessionRepository
	catalog  domain.ExerciseCatalog
	cache    domain.ResultCache
	cal      domain.Calendar
}

func NewExerciseService(sessions domain.SessionRepository, catalog domain.ExerciseCatalog, cache domain.ResultCache, cal domain.Calendar) *ExerciseService {
	return &ExerciseService{
		sessions: sessions,
		catalog:  catalog,
		cache:    cache,
		cal:      cal,
	}
}

// Names lists every exercise the catalog knows, sorted.
func (s *ExerciseService) Names(ctx context.Context) ([]string, error) {
	names, err := s.catalog.Names(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *ExerciseService) Trend(ctx context.Context, name string) ([]domain.TrendPoint, error) {
	name, err := exerciseName(name)
	if err != nil {
		return nil, err
	}

	return cached(ctx, s.cache, domain.ExerciseTrendKey(name), domain.ExerciseTrendTTL, func(ctx context.Context) ([]domain.TrendPoint, error) {
		sessions, err := s.sessions.ListByExercise(ctx, name)
		if err != nil {
			return nil, err
		}
		return analytics.ExerciseTrend(s.cal, sessions, name), nil
	})
}

func (s *ExerciseService) Stats(ctx context.Context, name string) (domain.ExerciseStats, error) {
	name, err := exerciseName(name)
	if err != nil {
		return domain.ExerciseStats{}, err
	}

	return cached(ctx, s.cache, domain.ExerciseStatsKey(name), domain.ExerciseStatsTTL, func(ctx context.Context) (domain.ExerciseStats, error) {
		sessions, err := s.sessions.ListByExercise(ctx, name)
		if err != nil {
			return domain.ExerciseStats{}, err
		}
		return analytics.ExerciseSummary(s.cal, sessions, name), nil
	})
}

// Top returns the heaviest catalog entries. Out of range limits fall back to
// the default or are capped.
func (s *ExerciseService) Top(ctx context.Context, limit int) ([]*domain.ExerciseRecord, error) {
	if limit <= 0 {
		limit = domain.DefaultTopExercises
	}
	limit = min(limit, MaxTopExercises)

	records, err := s.catalog.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.ExerciseRecord{}
	}
	return records, nil
}

func exerciseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrExerciseNameRequired
	}
	if len(name) > domain.MaxExerciseNameLen {
		return "", domain.ErrExerciseNameTooLong
	}
	return name, nil
}
