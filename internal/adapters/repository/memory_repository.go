package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var (
	_ domain.SessionRepository = (*InMemorySessionRepository)(nil)
	_ domain.ExerciseCatalog   = (*InMemoryExerciseCatalog)(nil)
)

// InMemorySessionRepository keeps sessions in process. Sessions are copied on
// the way in and out so callers never share state with the store.
type InMemorySessionRepository struct {
	store map[string]*domain.Session

	mu sync.RWMutex
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		store: make(map[string]*domain.Session),
	}
}

func (r *InMemorySessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if _, exists := r.store[session.ID]; exists {
		return domain.ErrInvalidInput
	}

	r.store[session.ID] = session.Clone()
	return nil
}

func (r *InMemorySessionRepository) Update(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}

	r.store[session.ID] = session.Clone()
	return nil
}

func (r *InMemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrSessionNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemorySessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.store[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (r *InMemorySessionRepository) ListAll(ctx context.Context) ([]*domain.Session, error) {
	return r.filter(func(*domain.Session) bool { return true }), nil
}

func (r *InMemorySessionRepository) ListByExercise(ctx context.Context, name string) ([]*domain.Session, error) {
	return r.filter(func(s *domain.Session) bool { return s.HasExercise(name) }), nil
}

func (r *InMemorySessionRepository) LastByWorkoutType(ctx context.Context, workoutType string) (*domain.Session, error) {
	matches := r.filter(func(s *domain.Session) bool { return s.WorkoutType == workoutType })
	if len(matches) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return matches[0], nil
}

// filter returns clones of the matching sessions, most recent first.
func (r *InMemorySessionRepository) filter(keep func(*domain.Session) bool) []*domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*domain.Session, 0, len(r.store))
	for _, s := range r.store {
		if keep(s) {
			sessions = append(sessions, s.Clone())
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.After(sessions[j].Date)
		}
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions
}

type InMemoryExerciseCatalog struct {
	store map[string]domain.ExerciseRecord

	mu sync.RWMutex
}

func NewInMemoryExerciseCatalog() *InMemoryExerciseCatalog {
	return &InMemoryExerciseCatalog{
		store: make(map[string]domain.ExerciseRecord),
	}
}

func (c *InMemoryExerciseCatalog) Names(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.store))
	for name := range c.store {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (c *InMemoryExerciseCatalog) Top(ctx context.Context, limit int) ([]*domain.ExerciseRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]*domain.ExerciseRecord, 0, len(c.store))
	for _, rec := range c.store {
		rec := rec
		records = append(records, &rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].MaxWeight != records[j].MaxWeight {
			return records[i].MaxWeight > records[j].MaxWeight
		}
		return records[i].Name < records[j].Name
	})

	if limit >= 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (c *InMemoryExerciseCatalog) Upsert(ctx context.Context, rec *domain.ExerciseRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := *rec
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now().UTC()
	}
	c.store[rec.Name] = stored
	return nil
}
