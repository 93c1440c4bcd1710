// Package analyzer computes streak analytics over habit records. Every
// function is pure: it reads the records it is given and never modifies them.
package analyzer

import "github.com/blackwell-systems/habitual/internal/habit"

// StreakSummary is a habit's current streak together with its identity.
type StreakSummary struct {
	Name          string            `json:"name"`
	Periodicity   habit.Periodicity `json:"periodicity"`
	CurrentStreak int               `json:"current_streak"`
}

// HabitStreak carries both streak measures for a single habit.
type HabitStreak struct {
	Name          string            `json:"name"`
	Periodicity   habit.Periodicity `json:"periodicity"`
	Completions   int               `json:"completions"`
	CurrentStreak int               `json:"current_streak"`
	LongestStreak int               `json:"longest_streak"`
}

// PeriodicityBest is the single champion of one periodicity bucket.
type PeriodicityBest struct {
	Periodicity habit.Periodicity `json:"periodicity"`
	Name        string            `json:"name"`
	Streak      int               `json:"streak"`
}

// PeriodicityBests holds one champion per periodicity, in order of first
// occurrence.
type PeriodicityBests []PeriodicityBest

// Get returns the champion for p, if any habit of that periodicity exists.
func (b PeriodicityBests) Get(p habit.Periodicity) (PeriodicityBest, bool) {
	for _, best := range b {
		if best.Periodicity == p {
			return best, true
		}
	}
	return PeriodicityBest{}, false
}

// OverallStreak is the highest longest streak and every habit tied at it.
type OverallStreak struct {
	Names  []string `json:"names"`
	Streak int      `json:"streak"`
}

// Report is the full analytics result for a set of habits.
type Report struct {
	// Today is the reference date current streaks were computed against.
	Today string `json:"today"`

	// Habits lists name -> periodicity, one entry per habit.
	Habits []map[string]habit.Periodicity `json:"habits"`

	CurrentStreaks []StreakSummary  `json:"current_streaks"`
	Streaks        []HabitStreak    `json:"streaks"`
	ByPeriodicity  PeriodicityBests `json:"by_periodicity"`
	Overall        OverallStreak    `json:"overall"`
}
