// Package clock owns the calendar policy of the progression engine: what
// counts as "today" and where a week starts. Every component that reasons
// about days or weeks goes through a Clock so tests can pin the date.
package clock

import "time"

const FormatDate = "2006-01-02"

type Clock interface {
	Now() time.Time
	// Today returns midnight of the current day in the policy timezone.
	Today() time.Time
	// WeekStart returns Monday midnight of the week containing t.
	WeekStart(t time.Time) time.Time
}

type WallClock struct {
	loc *time.Location
}

func New(loc *time.Location) *WallClock {
	if loc == nil {
		loc = time.UTC
	}
	return &WallClock{loc: loc}
}

func (c *WallClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *WallClock) Today() time.Time {
	return StartOfDay(c.Now())
}

func (c *WallClock) WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// WeekEnd returns the last day (Sunday, midnight) of the week starting at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysBetween returns the number of calendar days from t1 to t2, each taken
// as the civil date in its own location. Negative when t2 is before t1.
// Counting goes through UTC so DST transitions and mixed locations (dates
// scanned from Postgres carry UTC) cannot shift the result.
func DaysBetween(t1, t2 time.Time) int {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}
