package analytics

import (
	"time"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

// Overview assembles the dashboard numbers from one snapshot. top is passed
// through untouched; it comes from the exercise catalog.
func Overview(cal domain.Calendar, sessions []*domain.Session, top []*domain.ExerciseRecord, now time.Time) *domain.StatsOverview {
	asc := SortByDate(sessions)
	weights := BodyWeightSeries(cal, asc)
	days := NewDaySet(cal, asc)

	if top == nil {
		top = []*domain.ExerciseRecord{}
	}

	return &domain.StatsOverview{
		Summary: domain.StatsSummary{
			TotalSessions:    len(asc),
			LatestBodyWeight: LatestBodyWeight(asc),
			AvgBodyWeight30d: RollingAverage(weights, BodyWeightWindow),
		},
		BodyWeightSeries: weights,
		VolumeByDate:     VolumeByDate(cal, asc),
		TopExercises:     top,
		WorkoutDates:     days.Sorted(),
		CurrentStreak:    CurrentStreak(cal, days, now),
		LongestStreak:    LongestStreak(cal, days),
		PeriodCounts:     CountPeriods(cal, asc, now),
	}
}

// LatestBodyWeight is the body weight of the most recent session, which may be unset.
func LatestBodyWeight(sessionsAsc []*domain.Session) *float64 {
	if len(sessionsAsc) == 0 {
		return nil
	}
	last := sessionsAsc[len(sessionsAsc)-1]
	if last.BodyWeight == nil {
		return nil
	}
	v := *last.BodyWeight
	return &v
}
