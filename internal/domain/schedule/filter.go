package schedule

import "time"

// MaxListLimit bounds lesson listings.
const MaxListLimit = 500

// LessonFilter is the structured form of the optional listing filters.
// All set fields combine with AND; the repository translates it into a
// single parameterized query.
type LessonFilter struct {
	SchoolID   string
	From       *time.Time // inclusive lower bound
	To         *time.Time // exclusive upper bound
	Difficulty *Difficulty
	Limit      int
}

func (f LessonFilter) EffectiveLimit() int {
	if f.Limit <= 0 || f.Limit > MaxListLimit {
		return MaxListLimit
	}
	return f.Limit
}

// DayStartUTC truncates an instant to UTC midnight of its calendar day,
// the inclusive "from" boundary.
func DayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayEndUTC is the exclusive upper boundary for an inclusive "to" day:
// midnight of the following day.
func DayEndUTC(t time.Time) time.Time {
	return DayStartUTC(t).Add(24 * time.Hour)
}
