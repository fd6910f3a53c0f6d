package analytics_test

import (
	"time"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

var utc = domain.NewCalendar(time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func weight(v float64) *float64 { return &v }

func session(date time.Time, exercises ...domain.SessionExercise) *domain.Session {
	return &domain.Session{Date: date, WorkoutType: "Push", Workout: exercises}
}

func exercise(name string, sets ...domain.Set) domain.SessionExercise {
	if sets == nil {
		sets = []domain.Set{}
	}
	return domain.SessionExercise{Name: name, Sets: sets}
}

func set(w float64, r int) domain.Set {
	return domain.Set{Weight: w, Reps: r}
}
