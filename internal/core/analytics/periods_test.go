package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/progress-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

func TestCountPeriods(t *testing.T) {
	// Wednesday 13 March 2024
	now := time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		session(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),              // week start, this month
		session(time.Date(2024, 3, 16, 23, 59, 59, 999_000_000, time.UTC)), // week end boundary
		session(time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)),              // next week, this month
		session(time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC)),            // previous week
		session(time.Date(2024, 2, 29, 23, 59, 59, 999_000_000, time.UTC)), // last month end
		session(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),               // last month start
		session(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)),             // older
		session(time.Date(2024, 3, 31, 23, 59, 59, 999_000_000, time.UTC)), // this month end
	}

	counts := analytics.CountPeriods(utc, sessions, now)

	assert.Equal(t, domain.PeriodCounts{ThisWeek: 2, ThisMonth: 5, LastMonth: 2}, counts)
}

func TestCountPeriods_WeekEndBoundaryStaysInWeek(t *testing.T) {
	saturday := time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)
	boundary := time.Date(2024, 3, 16, 23, 59, 59, 999_000_000, time.UTC)

	this := analytics.CountPeriods(utc, []*domain.Session{session(boundary)}, saturday)
	next := analytics.CountPeriods(utc, []*domain.Session{session(boundary)}, saturday.AddDate(0, 0, 1))

	assert.Equal(t, 1, this.ThisWeek)
	assert.Equal(t, 0, next.ThisWeek, "the boundary instant belongs to the earlier week only")
}

func TestCountPeriods_Empty(t *testing.T) {
	assert.Equal(t, domain.PeriodCounts{}, analytics.CountPeriods(utc, nil, time.Now()))
}

func TestCountPeriods_LastMonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	sessions := []*domain.Session{
		session(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),               // December start
		session(time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC)), // December end
		session(time.Date(2023, 11, 30, 23, 59, 59, 999_000_000, time.UTC)), // November
		session(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)),               // November
		session(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),                // this month
	}

	counts := analytics.CountPeriods(utc, sessions, now)

	assert.Equal(t, 2, counts.LastMonth)
	assert.Equal(t, 1, counts.ThisMonth)
}
