package analyzer

import (
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
)

// SummarizeWithCurrentStreak returns one entry per record, in input order,
// carrying the record's current streak as of today.
func SummarizeWithCurrentStreak[R Record](records []R, today time.Time) []StreakSummary {
	summary := make([]StreakSummary, 0, len(records))
	for _, r := range records {
		summary = append(summary, StreakSummary{
			Name:          r.Name(),
			Periodicity:   r.Periodicity(),
			CurrentStreak: CurrentStreak(r, today),
		})
	}
	return summary
}

// LongestStreakOverall returns the highest longest-streak across all records
// together with the names of every record that reaches it. Ties are kept in
// input order. An empty input yields no names and 0.
func LongestStreakOverall[R Record](records []R) ([]string, int) {
	names := []string{}
	best := 0
	for _, r := range records {
		streak := LongestStreak(r)
		switch {
		case streak > best:
			best = streak
			names = []string{r.Name()}
		case streak == best:
			names = append(names, r.Name())
		}
	}
	return names, best
}

// BestStreakByPeriodicity keeps a single champion per periodicity: the record
// with the highest longest streak. On a tie the first record seen wins.
// Buckets are ordered by the first occurrence of their periodicity.
func BestStreakByPeriodicity[R Record](records []R) PeriodicityBests {
	bests := PeriodicityBests{}
	index := make(map[habit.Periodicity]int)
	for _, r := range records {
		streak := LongestStreak(r)
		i, seen := index[r.Periodicity()]
		if !seen {
			index[r.Periodicity()] = len(bests)
			bests = append(bests, PeriodicityBest{
				Periodicity: r.Periodicity(),
				Name:        r.Name(),
				Streak:      streak,
			})
			continue
		}
		if streak > bests[i].Streak {
			bests[i].Name = r.Name()
			bests[i].Streak = streak
		}
	}
	return bests
}

// ListSummary maps each record to a single-entry name -> periodicity mapping,
// preserving input order.
func ListSummary[R Record](records []R) []map[string]habit.Periodicity {
	out := make([]map[string]habit.Periodicity, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]habit.Periodicity{r.Name(): r.Periodicity()})
	}
	return out
}

// HabitStreaks computes both streak measures for every record.
func HabitStreaks[R Record](records []R, today time.Time) []HabitStreak {
	out := make([]HabitStreak, 0, len(records))
	for _, r := range records {
		out = append(out, HabitStreak{
			Name:          r.Name(),
			Periodicity:   r.Periodicity(),
			Completions:   len(sortedDays(r)),
			CurrentStreak: CurrentStreak(r, today),
			LongestStreak: LongestStreak(r),
		})
	}
	return out
}

// Analyze runs every analysis over the records and bundles the results.
func Analyze[R Record](records []R, today time.Time) Report {
	names, longest := LongestStreakOverall(records)
	return Report{
		Today:          today.Format(habit.DateLayout),
		Habits:         ListSummary(records),
		CurrentStreaks: SummarizeWithCurrentStreak(records, today),
		Streaks:        HabitStreaks(records, today),
		ByPeriodicity:  BestStreakByPeriodicity(records),
		Overall: OverallStreak{
			Names:  names,
			Streak: longest,
		},
	}
}
