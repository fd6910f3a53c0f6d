package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

func newTestSession(t *testing.T, date time.Time, workoutType string, exercises ...domain.SessionExercise) *domain.Session {
	t.Helper()
	if exercises == nil {
		exercises = []domain.SessionExercise{}
	}
	s, err := domain.NewSession(domain.SessionInput{
		Date:        date,
		WorkoutType: workoutType,
		Workout:     exercises,
	})
	require.NoError(t, err)
	return s
}

// runSessionRepositoryContract exercises the behaviour every session store shares.
func runSessionRepositoryContract(t *testing.T, repo domain.SessionRepository, missingID string) {
	ctx := context.Background()
	day := time.Date(2024, 4, 1, 18, 30, 0, 0, time.UTC)

	bench := domain.SessionExercise{Name: "Bench", Sets: []domain.Set{{Weight: 80, Reps: 5}}}
	squat := domain.SessionExercise{Name: "Squat", Sets: []domain.Set{{Weight: 120, Reps: 3}}}

	older := newTestSession(t, day, "Push", bench)
	bw := 81.2
	older.BodyWeight = &bw
	newer := newTestSession(t, day.AddDate(0, 0, 2), "Legs", squat, domain.SessionExercise{Name: "Plank", Sets: []domain.Set{}})
	latestPush := newTestSession(t, day.AddDate(0, 0, 3), "Push", bench)

	t.Run("Create assigns IDs", func(t *testing.T) {
		for _, s := range []*domain.Session{older, newer, latestPush} {
			require.NoError(t, repo.Create(ctx, s))
			assert.NotEmpty(t, s.ID)
		}
	})

	t.Run("Create then read returns the same document", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)

		assert.Equal(t, older.ID, fetched.ID)
		assert.True(t, older.Date.Equal(fetched.Date))
		assert.Equal(t, "Push", fetched.WorkoutType)
		require.NotNil(t, fetched.BodyWeight)
		assert.Equal(t, 81.2, *fetched.BodyWeight)
		assert.Equal(t, older.Workout, fetched.Workout)
	})

	t.Run("Empty set lists survive the round trip", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, newer.ID)
		require.NoError(t, err)
		require.Len(t, fetched.Workout, 2)
		assert.NotNil(t, fetched.Workout[1].Sets)
		assert.Empty(t, fetched.Workout[1].Sets)
		assert.Nil(t, fetched.BodyWeight)
	})

	t.Run("ListAll is most recent first", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, latestPush.ID, all[0].ID)
		assert.Equal(t, newer.ID, all[1].ID)
		assert.Equal(t, older.ID, all[2].ID)
	})

	t.Run("ListByExercise matches names exactly", func(t *testing.T) {
		benchSessions, err := repo.ListByExercise(ctx, "Bench")
		require.NoError(t, err)
		require.Len(t, benchSessions, 2)
		assert.Equal(t, latestPush.ID, benchSessions[0].ID)

		none, err := repo.ListByExercise(ctx, "bench")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("LastByWorkoutType", func(t *testing.T) {
		last, err := repo.LastByWorkoutType(ctx, "Push")
		require.NoError(t, err)
		assert.Equal(t, latestPush.ID, last.ID)

		_, err = repo.LastByWorkoutType(ctx, "Full Body")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Update replaces fields", func(t *testing.T) {
		require.NoError(t, older.Replace(domain.SessionInput{
			Date:        day.Add(time.Hour),
			WorkoutType: "Upper",
			Workout:     []domain.SessionExercise{squat},
		}))
		require.NoError(t, repo.Update(ctx, older))

		fetched, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "Upper", fetched.WorkoutType)
		assert.Nil(t, fetched.BodyWeight)
		assert.Equal(t, "Squat", fetched.Workout[0].Name)
	})

	t.Run("Missing IDs are not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, missingID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		ghost := newTestSession(t, day, "Push")
		ghost.ID = missingID
		assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrSessionNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, missingID), domain.ErrSessionNotFound)

		_, err = repo.GetByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete removes permanently", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, newer.ID))

		_, err := repo.GetByID(ctx, newer.ID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, newer.ID), domain.ErrSessionNotFound)
	})
}

func runExerciseCatalogContract(t *testing.T, catalog domain.ExerciseCatalog) {
	ctx := context.Background()

	for _, rec := range []*domain.ExerciseRecord{
		{Name: "Squat", MaxWeight: 140, MaxReps: 3},
		{Name: "Bench", MaxWeight: 100, MaxReps: 5},
		{Name: "Curl", MaxWeight: 20, MaxReps: 12},
	} {
		rec.UpdatedAt = time.Now().UTC()
		require.NoError(t, catalog.Upsert(ctx, rec))
	}

	t.Run("Names are distinct and sorted", func(t *testing.T) {
		names, err := catalog.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bench", "Curl", "Squat"}, names)
	})

	t.Run("Upsert overwrites an existing name", func(t *testing.T) {
		require.NoError(t, catalog.Upsert(ctx, &domain.ExerciseRecord{Name: "Curl", MaxWeight: 200, MaxReps: 1, UpdatedAt: time.Now().UTC()}))

		names, err := catalog.Names(ctx)
		require.NoError(t, err)
		assert.Len(t, names, 3)
	})

	t.Run("Top orders by max weight", func(t *testing.T) {
		top, err := catalog.Top(ctx, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "Curl", top[0].Name)
		assert.Equal(t, 1, top[0].MaxReps)
		assert.Equal(t, "Squat", top[1].Name)
	})
}
