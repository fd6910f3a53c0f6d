package workers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/progress-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

const queueSize = 100

type SessionReader interface {
	ListAll(ctx context.Context) ([]*domain.Session, error)
	ListByExercise(ctx context.Context, name string) ([]*domain.Session, error)
}

type CatalogJob struct {
	Name string
}

// CatalogWorker keeps the exercise catalog in step with the session log.
// Each job recomputes one exercise's best set from its full history.
type CatalogWorker struct {
	sessions SessionReader
	catalog  domain.ExerciseCatalog
	cache    domain.ResultCache
	cal      domain.Calendar
	jobs     chan CatalogJob
	done     chan struct{}
}

func NewCatalogWorker(sessions SessionReader, catalog domain.ExerciseCatalog, cache domain.ResultCache, cal domain.Calendar) *CatalogWorker {
	return &CatalogWorker{
		sessions: sessions,
		catalog:  catalog,
		cache:    cache,
		cal:      cal,
		jobs:     make(chan CatalogJob, queueSize),
		done:     make(chan struct{}),
	}
}

func (w *CatalogWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		logrus.Info("[WORKER] catalog worker started")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				logrus.Info("[WORKER] catalog worker shutting down")
				return
			}
		}
	}()
}

// Done is closed once the worker loop has returned.
func (w *CatalogWorker) Done() <-chan struct{} {
	return w.done
}

// Enqueue never blocks; when the queue is full the job is dropped and the
// next write touching the same exercise catches up.
func (w *CatalogWorker) Enqueue(names ...string) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		select {
		case w.jobs <- CatalogJob{Name: name}:
		default:
			logrus.WithField("exercise", name).Warn("[WORKER] catalog queue full, dropping job")
		}
	}
}

// Backfill rebuilds every catalog entry from the session log. It runs
// synchronously and is meant for startup.
func (w *CatalogWorker) Backfill(ctx context.Context) error {
	sessions, err := w.sessions.ListAll(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, s := range sessions {
		for _, name := range s.ExerciseNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			rec := domain.NewExerciseRecord(name, analytics.ExerciseSummary(w.cal, sessions, name))
			if err := w.catalog.Upsert(ctx, rec); err != nil {
				return err
			}
		}
	}

	w.invalidate(ctx)
	logrus.WithField("exercises", len(seen)).Info("[WORKER] catalog backfill complete")
	return nil
}

func (w *CatalogWorker) processJob(ctx context.Context, job CatalogJob) {
	log := logrus.WithField("exercise", job.Name)

	sessions, err := w.sessions.ListByExercise(ctx, job.Name)
	if err != nil {
		log.WithError(err).Error("[WORKER] failed to load history")
		return
	}

	// an exercise with no sets left keeps its name with zeroed maxima
	rec := domain.NewExerciseRecord(job.Name, analytics.ExerciseSummary(w.cal, sessions, job.Name))
	if err := w.catalog.Upsert(ctx, rec); err != nil {
		log.WithError(err).Error("[WORKER] failed to update catalog")
		return
	}

	w.invalidate(ctx)
	log.WithFields(logrus.Fields{
		"max_weight": rec.MaxWeight,
		"max_reps":   rec.MaxReps,
	}).Debug("[WORKER] catalog entry refreshed")
}

// invalidate drops results built on top of the catalog.
func (w *CatalogWorker) invalidate(ctx context.Context) {
	if w.cache == nil {
		return
	}
	for _, prefix := range []string{domain.CachePrefixStats, domain.CacheKeyExerciseNames} {
		if err := w.cache.InvalidatePrefix(ctx, prefix); err != nil {
			logrus.WithError(err).WithField("prefix", prefix).Error("[CACHE] invalidation failed")
		}
	}
}
