package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/progress-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

type StatsService struct {
	sessions domain.SessionRepository
	catalog  domain.ExerciseCatalog
	cache    domain.ResultCache
	cal      domain.Calendar
	now      func() time.Time
}

func NewStatsService(sessions domain.SessionRepository, catalog domain.ExerciseCatalog, cache domain.ResultCache, cal domain.Calendar) *StatsService {
	return &StatsService{
		sessions: sessions,
		catalog:  catalog,
		cache:    cache,
		cal:      cal,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for streaks and period ranges.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

func (s *StatsService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	return cached(ctx, s.cache, domain.CacheKeyStatsOverview, domain.StatsTTL, s.computeOverview)
}

func (s *StatsService) computeOverview(ctx context.Context) (*domain.StatsOverview, error) {
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.catalog.Top(ctx, domain.DefaultTopExercises)
	if err != nil {
		return nil, err
	}

	return analytics.Overview(s.cal, sessions, top, s.now()), nil
}
