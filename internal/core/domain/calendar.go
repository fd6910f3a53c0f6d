package domain

import (
	"strings"
	"time"
)

const DateKeyLayout = "2006-01-02"

// Calendar is the single time-zone convention used to turn instants into
// calendar days. Storage, grouping, streaks and period ranges all go through it.
type Calendar struct {
	loc *time.Location
}

type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Key returns the YYYY-MM-DD day of t in the calendar zone.
func (c Calendar) Key(t time.Time) string {
	return t.In(c.Location()).Format(DateKeyLayout)
}

// StartOfDay returns midnight of the day containing t.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location())
}

// PreviousDay steps one calendar day back from the day containing t.
func (c Calendar) PreviousDay(t time.Time) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), t.Day()-1, 0, 0, 0, 0, c.Location())
}

// ParseKey turns a day key back into midnight of that day.
func (c Calendar) ParseKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, c.Location())
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateKeyLayout,
}

// ParseDate accepts an RFC 3339 instant or a zone-less date / date-time,
// reading the latter in the calendar zone. The result is in UTC.
func (c Calendar) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrSessionDateRequired
	}
	for i, layout := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if i == 0 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, c.Location())
		}
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// WeekRange is Sunday 00:00 through Saturday 23:59:59.999 around now.
func (c Calendar) WeekRange(now time.Time) Range {
	now = now.In(c.Location())
	offset := int(now.Weekday() - time.Sunday)
	start := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, c.Location())
	end := time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, int(999*time.Millisecond), c.Location())
	return Range{Start: start, End: end}
}

func (c Calendar) MonthRange(now time.Time) Range {
	now = now.In(c.Location())
	return c.monthRange(now.Year(), now.Month())
}

func (c Calendar) PreviousMonthRange(now time.Time) Range {
	now = now.In(c.Location())
	return c.monthRange(now.Year(), now.Month()-1)
}

func (c Calendar) monthRange(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, c.Location())
	// day 0 of the next month is the last day of this one
	end := time.Date(start.Year(), start.Month()+1, 0, 23, 59, 59, int(999*time.Millisecond), c.Location())
	return Range{Start: start, End: end}
}
