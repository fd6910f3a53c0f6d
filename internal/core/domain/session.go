package domain

import (
	"strings"
	"time"
)

const (
	WorkoutTypePush     = "Push"
	WorkoutTypePull     = "Pull"
	WorkoutTypeLegs     = "Legs"
	WorkoutTypeFullBody = "Full Body"
	WorkoutTypeUpper    = "Upper"
	WorkoutTypeLower    = "Lower"

	MaxWorkoutTypeLen  = 50
	MaxExerciseNameLen = 100
)

var KnownWorkoutTypes = []string{
	WorkoutTypePush,
	WorkoutTypePull,
	WorkoutTypeLegs,
	WorkoutTypeFullBody,
	WorkoutTypeUpper,
	WorkoutTypeLower,
}

type Set struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type SessionExercise struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

type Session struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	BodyWeight  *float64          `json:"body_weight"`
	WorkoutType string            `json:"workout_type"`
	Workout     []SessionExercise `json:"workout"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// SessionInput is the full set of user-editable fields. Create and update
// both replace every field.
type SessionInput struct {
	Date        time.Time
	BodyWeight  *float64
	WorkoutType string
	Workout     []SessionExercise
}

func NewSession(input SessionInput) (*Session, error) {
	now := time.Now().UTC()
	s := &Session{
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.apply(input); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace overwrites date, body weight, type and workout, keeping identity.
func (s *Session) Replace(input SessionInput) error {
	if err := s.apply(input); err != nil {
		return err
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Session) apply(input SessionInput) error {
	candidate := Session{
		Date:        input.Date.UTC(),
		BodyWeight:  input.BodyWeight,
		WorkoutType: strings.TrimSpace(input.WorkoutType),
		Workout:     normalizeWorkout(input.Workout),
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	s.Date = candidate.Date
	s.BodyWeight = candidate.BodyWeight
	s.WorkoutType = candidate.WorkoutType
	s.Workout = candidate.Workout
	return nil
}

func (s *Session) Validate() error {
	if s.Date.IsZero() {
		return ErrSessionDateRequired
	}
	if s.WorkoutType == "" {
		return ErrWorkoutTypeRequired
	}
	if len(s.WorkoutType) > MaxWorkoutTypeLen {
		return ErrWorkoutTypeTooLong
	}
	if s.Workout == nil {
		return ErrWorkoutRequired
	}
	if s.BodyWeight != nil && *s.BodyWeight < 0 {
		return ErrInvalidBodyWeight
	}
	for _, ex := range s.Workout {
		if ex.Name == "" {
			return ErrExerciseNameRequired
		}
		if len(ex.Name) > MaxExerciseNameLen {
			return ErrExerciseNameTooLong
		}
		for _, set := range ex.Sets {
			if set.Weight < 0 || set.Reps < 0 {
				return ErrInvalidSet
			}
		}
	}
	return nil
}

// ExerciseNames lists the distinct names in the workout, in order of appearance.
func (s *Session) ExerciseNames() []string {
	seen := make(map[string]bool, len(s.Workout))
	names := make([]string, 0, len(s.Workout))
	for _, ex := range s.Workout {
		if !seen[ex.Name] {
			seen[ex.Name] = true
			names = append(names, ex.Name)
		}
	}
	return names
}

func normalizeWorkout(workout []SessionExercise) []SessionExercise {
	if workout == nil {
		return nil
	}
	out := make([]SessionExercise, 0, len(workout))
	for _, ex := range workout {
		sets := ex.Sets
		if sets == nil {
			sets = []Set{}
		}
		out = append(out, SessionExercise{
			Name: strings.TrimSpace(ex.Name),
			Sets: sets,
		})
	}
	return out
}

// Clone returns a deep copy, so stores can hand out sessions without sharing slices.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.BodyWeight != nil {
		bw := *s.BodyWeight
		c.BodyWeight = &bw
	}
	if s.Workout != nil {
		c.Workout = make([]SessionExercise, len(s.Workout))
		for i, ex := range s.Workout {
			c.Workout[i] = SessionExercise{Name: ex.Name, Sets: append([]Set{}, ex.Sets...)}
		}
	}
	return &c
}

// HasExercise reports whether any workout entry is named exactly name.
func (s *Session) HasExercise(name string) bool {
	for _, ex := range s.Workout {
		if ex.Name == name {
			return true
		}
	}
	return false
}
