package domain

import "context"

type SessionRepository interface {
	// Create persists a new session and assigns its ID.
	Create(ctx context.Context, session *Session) error

	// Update replaces date, body weight, workout type and workout of an existing session.
	// Returns ErrSessionNotFound when no session matches the ID.
	Update(ctx context.Context, session *Session) error

	// Delete permanently removes a session. There is no soft delete.
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*Session, error)

	// ListAll returns every session, most recent date first.
	ListAll(ctx context.Context) ([]*Session, error)

	// ListByExercise returns the sessions containing at least one workout entry
	// named exactly name, most recent date first.
	ListByExercise(ctx context.Context, name string) ([]*Session, error)

	// LastByWorkoutType returns the most recent session of the given type.
	LastByWorkoutType(ctx context.Context, workoutType string) (*Session, error)
}

type ExerciseCatalog interface {
	// Names returns the distinct exercise names, sorted.
	Names(ctx context.Context) ([]string, error)

	// Top returns up to limit records ordered by MaxWeight, heaviest first.
	Top(ctx context.Context, limit int) ([]*ExerciseRecord, error)

	// Upsert inserts the record or overwrites the maxima of an existing name.
	Upsert(ctx context.Context, record *ExerciseRecord) error
}
