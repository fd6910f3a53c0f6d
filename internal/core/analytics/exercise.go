package analytics

import (
	"sort"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

type datedSet struct {
	day string
	set domain.Set
}

// exerciseSets flattens every set of the named exercise, tagged with its day.
func exerciseSets(cal domain.Calendar, sessions []*domain.Session, name string) []datedSet {
	var out []datedSet
	for _, s := range sessions {
		if s == nil {
			continue
		}
		day := cal.Key(s.Date)
		for _, ex := range s.Workout {
			if ex.Name != name {
				continue
			}
			for _, set := range ex.Sets {
				out = append(out, datedSet{day: day, set: set})
			}
		}
	}
	return out
}

// ExerciseTrend returns one point per day on which the exercise has at least
// one set, ascending by day. Weight and reps maxima are independent.
func ExerciseTrend(cal domain.Calendar, sessions []*domain.Session, name string) []domain.TrendPoint {
	byDay := make(map[string]*domain.TrendPoint)
	for _, ds := range exerciseSets(cal, sessions, name) {
		p, ok := byDay[ds.day]
		if !ok {
			byDay[ds.day] = &domain.TrendPoint{Date: ds.day, MaxWeight: ds.set.Weight, MaxReps: ds.set.Reps}
			continue
		}
		p.MaxWeight = max(p.MaxWeight, ds.set.Weight)
		p.MaxReps = max(p.MaxReps, ds.set.Reps)
	}

	points := make([]domain.TrendPoint, 0, len(byDay))
	for _, p := range byDay {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// ExerciseSummary computes the heaviest set ever and the heaviest set of the
// most recent day, each paired with the best reps at exactly that weight.
func ExerciseSummary(cal domain.Calendar, sessions []*domain.Session, name string) domain.ExerciseStats {
	sets := exerciseSets(cal, sessions, name)
	if len(sets) == 0 {
		return domain.ExerciseStats{}
	}

	lastDay := sets[0].day
	for _, ds := range sets[1:] {
		if ds.day > lastDay {
			lastDay = ds.day
		}
	}

	all := make([]domain.Set, 0, len(sets))
	var last []domain.Set
	for _, ds := range sets {
		all = append(all, ds.set)
		if ds.day == lastDay {
			last = append(last, ds.set)
		}
	}

	maxWeight, maxReps := bestSet(all)
	lastWeight, lastReps := bestSet(last)
	return domain.ExerciseStats{
		MaxWeight:  &maxWeight,
		MaxReps:    &maxReps,
		LastWeight: &lastWeight,
		LastReps:   &lastReps,
	}
}

// bestSet expects a non-empty slice.
func bestSet(sets []domain.Set) (float64, int) {
	weight := sets[0].Weight
	for _, s := range sets[1:] {
		weight = max(weight, s.Weight)
	}
	reps := -1
	for _, s := range sets {
		if s.Weight == weight {
			reps = max(reps, s.Reps)
		}
	}
	return weight, reps
}
