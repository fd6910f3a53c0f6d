package analytics

import (
	"sort"
	"time"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

// DaySet is the set of day keys holding at least one session.
type DaySet map[string]struct{}

func NewDaySet(cal domain.Calendar, sessions []*domain.Session) DaySet {
	days := make(DaySet, len(sessions))
	for _, s := range sessions {
		if s != nil {
			days[cal.Key(s.Date)] = struct{}{}
		}
	}
	return days
}

func (d DaySet) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Sorted returns the keys ascending.
func (d DaySet) Sorted() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CurrentStreak counts consecutive days ending today, or ending yesterday when
// nothing is logged yet today.
func CurrentStreak(cal domain.Calendar, days DaySet, now time.Time) int {
	cursor := cal.StartOfDay(now)
	if !days.Has(cal.Key(cursor)) {
		cursor = cal.PreviousDay(cursor)
		if !days.Has(cal.Key(cursor)) {
			return 0
		}
	}

	streak := 0
	// each iteration consumes a distinct member of days, so len(days) bounds the walk
	for streak < len(days) && days.Has(cal.Key(cursor)) {
		streak++
		cursor = cal.PreviousDay(cursor)
	}
	return streak
}

// LongestStreak is the longest run of consecutive days anywhere in the log.
func LongestStreak(cal domain.Calendar, days DaySet) int {
	longest, run := 0, 0
	var prev time.Time
	for i, key := range days.Sorted() {
		day, err := cal.ParseKey(key)
		if err != nil {
			continue
		}
		if i > 0 && cal.Key(cal.PreviousDay(day)) == cal.Key(prev) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = day
	}
	return longest
}

// WorkoutDays lists the distinct days with at least one session, ascending.
func WorkoutDays(cal domain.Calendar, sessions []*domain.Session) []string {
	return NewDaySet(cal, sessions).Sorted()
}
