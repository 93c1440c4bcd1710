package analyzer

import (
	"slices"
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
)

// Record is the read-only view of a habit the analyzer works on.
// *habit.Habit satisfies it.
type Record interface {
	Name() string
	Periodicity() habit.Periodicity
	Completions() []time.Time
}

// sortedDays returns the record's completions truncated to calendar days,
// deduplicated and in ascending order. The record is never modified.
func sortedDays(r Record) []time.Time {
	raw := r.Completions()
	days := make([]time.Time, 0, len(raw))
	for _, c := range raw {
		days = append(days, habit.Day(c))
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	return slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })
}

// LongestStreak returns the longest run of completions spaced exactly one
// expected gap apart. A habit with no completions has a longest streak of 0;
// a single completion counts as 1.
func LongestStreak(r Record) int {
	days := sortedDays(r)
	if len(days) == 0 {
		return 0
	}

	gap := r.Periodicity().ExpectedGap()
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if habit.DaysBetween(days[i-1], days[i]) == gap {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// CurrentStreak returns the streak that is still alive as of today. If more
// than one expected gap has passed since the last completion the habit has
// lapsed and the result is 0. Otherwise the streak is counted backward from
// the last completion and is at least 1.
func CurrentStreak(r Record, today time.Time) int {
	days := sortedDays(r)
	if len(days) == 0 {
		return 0
	}

	gap := r.Periodicity().ExpectedGap()
	last := len(days) - 1
	if habit.DaysBetween(days[last], today) > gap {
		return 0
	}

	streak := 1
	for i := last; i > 0; i-- {
		if habit.DaysBetween(days[i-1], days[i]) != gap {
			break
		}
		streak++
	}
	return streak
}
