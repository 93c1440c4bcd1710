package suggest

import "fmt"

// StreakAtRisk flags habits whose current streak ends unless they are
// completed today.
func StreakAtRisk(ctx *AnalysisContext) []Suggestion {
	var suggestions []Suggestion
	for _, h := range ctx.Habits {
		if h.CurrentStreak == 0 || h.DaysSinceLast != h.Periodicity.ExpectedGap() {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Category: CategoryAtRisk,
			Priority: PriorityCritical,
			Habit:    h.Name,
			Title:    fmt.Sprintf("Complete %s today", h.Name),
			Description: fmt.Sprintf(
				"Your %d-%s streak on %q lapses tomorrow. One completion today keeps it alive.",
				h.CurrentStreak, unit(h), h.Name,
			),
			ImpactScore: ComputeImpact(h.CurrentStreak, 1.0, 1.0),
		})
	}
	return suggestions
}

// LapsedStreak suggests restarting habits that once had a meaningful streak
// but have lapsed.
func LapsedStreak(ctx *AnalysisContext) []Suggestion {
	var suggestions []Suggestion
	for _, h := range ctx.Habits {
		if h.CurrentStreak > 0 || h.LongestStreak < 2 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Category: CategoryLapsed,
			Priority: PriorityHigh,
			Habit:    h.Name,
			Title:    fmt.Sprintf("Restart %s", h.Name),
			Description: fmt.Sprintf(
				"%q was last completed %d days ago. Your best run was %d %ss.",
				h.Name, h.DaysSinceLast, h.LongestStreak, unit(h),
			),
			ImpactScore: ComputeImpact(h.LongestStreak, 0.5, 1.0),
		})
	}
	return suggestions
}

// NeverCompleted flags habits that were registered at least one period ago
// but have no completions.
func NeverCompleted(ctx *AnalysisContext) []Suggestion {
	var suggestions []Suggestion
	for _, h := range ctx.Habits {
		if h.Completions > 0 {
			continue
		}
		age := int(ctx.Today.Sub(h.StartDate).Hours() / 24)
		if age < h.Periodicity.ExpectedGap() {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Category: CategoryInactive,
			Priority: PriorityMedium,
			Habit:    h.Name,
			Title:    fmt.Sprintf("Start %s or remove it", h.Name),
			Description: fmt.Sprintf(
				"%q was added %d days ago and has never been completed. "+
					"Complete it once to start a streak, or delete it to keep your list focused.",
				h.Name, age,
			),
			ImpactScore: ComputeImpact(0, 0.3, 1.0),
		})
	}
	return suggestions
}

// NearPersonalBest points out live streaks that are within two periods of
// the habit's longest streak, or level with it.
func NearPersonalBest(ctx *AnalysisContext) []Suggestion {
	var suggestions []Suggestion
	for _, h := range ctx.Habits {
		remaining := h.LongestStreak - h.CurrentStreak
		if h.CurrentStreak == 0 || remaining < 0 || remaining > 2 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Category: CategoryMilestone,
			Priority: PriorityLow,
			Habit:    h.Name,
			Title:    fmt.Sprintf("%d more to beat your best on %s", remaining+1, h.Name),
			Description: fmt.Sprintf(
				"Current streak %d, personal best %d. Keep going for a new record.",
				h.CurrentStreak, h.LongestStreak,
			),
			ImpactScore: ComputeImpact(h.CurrentStreak, 0.4, float64(remaining+1)),
		})
	}
	return suggestions
}

// unit names one period of h.
func unit(h HabitContext) string {
	if h.Periodicity.ExpectedGap() == 7 {
		return "week"
	}
	return "day"
}
