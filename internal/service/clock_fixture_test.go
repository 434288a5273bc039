package service_test

import (
	"time"

	"github.com/mindagrow/progression/pkg/clock"
)

// fixedClock pins the calendar for tests. Set now directly to move time.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Today() time.Time {
	return clock.StartOfDay(c.now)
}

func (c *fixedClock) WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return clock.StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}
