package services

import (
	"context"
	"errors"
	"strings"

	"github.com/comitanigiacomo/progress-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

// CatalogEnqueuer schedules a catalog refresh for the given exercise names.
type CatalogEnqueuer interface {
	Enqueue(names ...string)
}

type SessionService struct {
	repo    domain.SessionRepository
	cache   domain.ResultCache
	catalog CatalogEnqueuer
	cal     domain.Calendar
}

func NewSessionService(repo domain.SessionRepository, cache domain.ResultCache, catalog CatalogEnqueuer, cal domain.Calendar) *SessionService {
	return &SessionService{
		repo:    repo,
		cache:   cache,
		catalog: catalog,
		cal:     cal,
	}
}

func (s *SessionService) Create(ctx context.Context, input domain.SessionInput) (*domain.Session, error) {
	session, err := domain.NewSession(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, session.ExerciseNames())
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, id string, input domain.SessionInput) (*domain.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	touched := session.ExerciseNames()
	if err := session.Replace(input); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, append(touched, session.ExerciseNames()...))
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.afterWrite(ctx, session.ExerciseNames())
	return nil
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every session, most recent first.
func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.repo.ListAll(ctx)
}

// LastByType returns the latest session of the given type, or nil when there is none.
func (s *SessionService) LastByType(ctx context.Context, workoutType string) (*domain.Session, error) {
	workoutType = strings.TrimSpace(workoutType)
	if workoutType == "" {
		return nil, domain.ErrWorkoutTypeRequired
	}

	session, err := s.repo.LastByWorkoutType(ctx, workoutType)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, nil
	}
	return session, err
}

// WorkoutDates lists the days with at least one session, ascending.
func (s *SessionService) WorkoutDates(ctx context.Context) ([]string, error) {
	return cached(ctx, s.cache, domain.CacheKeyWorkoutDates, domain.StatsTTL, func(ctx context.Context) ([]string, error) {
		sessions, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.WorkoutDays(s.cal, sessions), nil
	})
}

// afterWrite drops every derived result before the write is reported and
// schedules the touched exercises for a catalog refresh.
func (s *SessionService) afterWrite(ctx context.Context, names []string) {
	invalidate(ctx, s.cache, domain.SessionDerivedPrefixes...)
	if s.catalog != nil && len(names) > 0 {
		s.catalog.Enqueue(names...)
	}
}
