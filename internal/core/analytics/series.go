package analytics

import (
	"sort"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

const BodyWeightWindow = 30

// BodyWeightSeries projects one point per session, in the order given.
// Sessions on the same day are not merged.
func BodyWeightSeries(cal domain.Calendar, sessionsAsc []*domain.Session) []domain.WeightPoint {
	points := make([]domain.WeightPoint, 0, len(sessionsAsc))
	for _, s := range sessionsAsc {
		if s == nil {
			continue
		}
		var value *float64
		if s.BodyWeight != nil {
			v := *s.BodyWeight
			value = &v
		}
		points = append(points, domain.WeightPoint{Date: cal.Key(s.Date), Value: value})
	}
	return points
}

// RollingAverage averages the recorded values among the last window points.
// Points without a value are left out of both sum and count; nil means no
// value was recorded in the window.
func RollingAverage(points []domain.WeightPoint, window int) *float64 {
	if window > 0 && len(points) > window {
		points = points[len(points)-window:]
	}
	var sum float64
	n := 0
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		sum += *p.Value
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// VolumeByDate sums weight x reps of every set, per day, ascending.
func VolumeByDate(cal domain.Calendar, sessions []*domain.Session) []domain.DatePoint {
	byDay := make(map[string]float64)
	for _, s := range sessions {
		if s == nil {
			continue
		}
		day := cal.Key(s.Date)
		for _, ex := range s.Workout {
			for _, set := range ex.Sets {
				byDay[day] += set.Weight * float64(set.Reps)
			}
		}
	}

	points := make([]domain.DatePoint, 0, len(byDay))
	for day, volume := range byDay {
		points = append(points, domain.DatePoint{Date: day, Value: volume})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// SortByDate returns a copy of sessions ordered by date, oldest first.
// Equal dates keep their relative order.
func SortByDate(sessions []*domain.Session) []*domain.Session {
	out := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
