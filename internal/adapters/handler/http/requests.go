package http

import (
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

type setRequest struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

type exerciseRequest struct {
	Name string       `json:"name"`
	Sets []setRequest `json:"sets"`
}

type sessionRequest struct {
	Date        string            `json:"date"`
	BodyWeight  *float64          `json:"body_weight"`
	WorkoutType string            `json:"workout_type"`
	Workout     []exerciseRequest `json:"workout"`
}

// toInput resolves the date in the calendar zone and rejects sets missing
// weight or reps. Everything else is checked by the domain.
func (r sessionRequest) toInput(cal domain.Calendar) (domain.SessionInput, error) {
	date, err := cal.ParseDate(r.Date)
	if err != nil {
		return domain.SessionInput{}, err
	}

	var workout []domain.SessionExercise
	if r.Workout != nil {
		workout = make([]domain.SessionExercise, 0, len(r.Workout))
		for _, ex := range r.Workout {
			sets := make([]domain.Set, 0, len(ex.Sets))
			for _, s := range ex.Sets {
				if s.Weight == nil || s.Reps == nil {
					return domain.SessionInput{}, domain.ErrSetIncomplete
				}
				sets = append(sets, domain.Set{Weight: *s.Weight, Reps: *s.Reps})
			}
			workout = append(workout, domain.SessionExercise{Name: ex.Name, Sets: sets})
		}
	}

	return domain.SessionInput{
		Date:        date,
		BodyWeight:  r.BodyWeight,
		WorkoutType: r.WorkoutType,
		Workout:     workout,
	}, nil
}
