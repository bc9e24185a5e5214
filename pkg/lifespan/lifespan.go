package lifespan

import (
	"time"
)

const (
	daysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60
)

// WeekCounts is the whole-week breakdown of a lifespan relative to a
// reference day. Lived + Remaining always equals Total.
type WeekCounts struct {
	Lived     int
	Remaining int
	Total     int
}

// WholeWeeksBetween returns the number of whole weeks from start to end,
// flooring by 7 days. If end is not strictly after start it returns 0,
// so the result is never negative.
func WholeWeeksBetween(start, end time.Time) int {
	days := daysBetween(start, end)
	if days <= 0 {
		return 0
	}
	return days / daysPerWeek
}

// Compute returns the lived, remaining, and total whole weeks for a life
// spanning birth to death, measured against today. Degenerate inputs
// (death before birth, today outside the range) yield zeros rather than
// errors.
func Compute(birth, death, today time.Time) WeekCounts {
	lived := WholeWeeksBetween(birth, today)
	remaining := WholeWeeksBetween(today, death)
	return WeekCounts{
		Lived:     lived,
		Remaining: remaining,
		Total:     lived + remaining,
	}
}

// daysBetween counts calendar days from a to b, discarding time of day
// and timezone so that two timestamps on the same calendar date are
// zero days apart. The count is taken on Unix seconds rather than a
// time.Duration, which would saturate on spans past ~292 years.
func daysBetween(a, b time.Time) int {
	return int((dateOf(b).Unix() - dateOf(a).Unix()) / secondsPerDay)
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return dateOf(t)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
