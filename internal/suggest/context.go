package suggest

import (
	"time"

	"github.com/blackwell-systems/habitual/internal/analyzer"
	"github.com/blackwell-systems/habitual/internal/habit"
)

// BuildContext derives the suggest context for habits as of today.
func BuildContext(habits []*habit.Habit, today time.Time) *AnalysisContext {
	today = habit.Day(today)
	ctx := &AnalysisContext{Today: today}

	streaks := analyzer.HabitStreaks(habits, today)
	for i, h := range habits {
		hc := HabitContext{
			Name:          h.Name(),
			Periodicity:   h.Periodicity(),
			StartDate:     h.StartDate(),
			Completions:   streaks[i].Completions,
			CurrentStreak: streaks[i].CurrentStreak,
			LongestStreak: streaks[i].LongestStreak,
			DaysSinceLast: -1,
		}
		if completions := h.Completions(); len(completions) > 0 {
			hc.DaysSinceLast = habit.DaysBetween(completions[len(completions)-1], today)
		}
		ctx.Habits = append(ctx.Habits, hc)
	}
	return ctx
}
