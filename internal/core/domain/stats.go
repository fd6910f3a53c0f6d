package domain

// TrendPoint holds the day's heaviest weight and highest reps for one
// exercise. The two maxima may come from different sets.
type TrendPoint struct {
	Date      string  `json:"date"`
	MaxWeight float64 `json:"max_weight"`
	MaxReps   int     `json:"max_reps"`
}

// ExerciseStats pairs the best weight with the reps done at that weight,
// all-time and for the most recent day. Nil fields mean no data.
type ExerciseStats struct {
	MaxWeight  *float64 `json:"max_weight"`
	MaxReps    *int     `json:"max_reps"`
	LastWeight *float64 `json:"last_weight"`
	LastReps   *int     `json:"last_reps"`
}

type DatePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type WeightPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

type PeriodCounts struct {
	ThisWeek  int `json:"this_week_sessions"`
	ThisMonth int `json:"this_month_sessions"`
	LastMonth int `json:"last_month_sessions"`
}

type StatsSummary struct {
	TotalSessions    int      `json:"total_sessions"`
	LatestBodyWeight *float64 `json:"latest_body_weight"`
	AvgBodyWeight30d *float64 `json:"avg_body_weight_30d"`
}

type StatsOverview struct {
	Summary          StatsSummary      `json:"summary"`
	BodyWeightSeries []WeightPoint     `json:"body_weight_series"`
	VolumeByDate     []DatePoint       `json:"volume_by_date"`
	TopExercises     []*ExerciseRecord `json:"top_exercises"`
	WorkoutDates     []string          `json:"workout_dates"`
	CurrentStreak    int               `json:"current_streak"`
	LongestStreak    int               `json:"longest_streak"`
	PeriodCounts
}
