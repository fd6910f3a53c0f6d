package analytics

import (
	"time"

	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
)

// CountPeriods counts sessions in the current week, the current month and the
// previous month around now. Bounds are inclusive.
func CountPeriods(cal domain.Calendar, sessions []*domain.Session, now time.Time) domain.PeriodCounts {
	week := cal.WeekRange(now)
	month := cal.MonthRange(now)
	prevMonth := cal.PreviousMonthRange(now)

	var counts domain.PeriodCounts
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if week.Contains(s.Date) {
			counts.ThisWeek++
		}
		if month.Contains(s.Date) {
			counts.ThisMonth++
		}
		if prevMonth.Contains(s.Date) {
			counts.LastMonth++
		}
	}
	return counts
}
