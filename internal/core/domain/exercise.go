package domain

import "time"

const DefaultTopExercises = 10

// ExerciseRecord is a catalog entry: a known exercise name and its best-ever
// set, where MaxReps is the reps achieved at MaxWeight.
type ExerciseRecord struct {
	Name      string    `json:"name" db:"name"`
	MaxWeight float64   `json:"max_weight" db:"max_weight"`
	MaxReps   int       `json:"max_reps" db:"max_reps"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func NewExerciseRecord(name string, stats ExerciseStats) *ExerciseRecord {
	rec := &ExerciseRecord{
		Name:      name,
		UpdatedAt: time.Now().UTC(),
	}
	if stats.MaxWeight != nil {
		rec.MaxWeight = *stats.MaxWeight
	}
	if stats.MaxReps != nil {
		rec.MaxReps = *stats.MaxReps
	}
	return rec
}
