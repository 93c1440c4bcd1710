// Package suggest provides the recommendation engine and rule types.
package suggest

import (
	"time"

	"github.com/blackwell-systems/habitual/internal/habit"
)

// Priority levels for suggestions.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Categories for suggestions.
const (
	CategoryAtRisk    = "at_risk"
	CategoryLapsed    = "lapsed"
	CategoryInactive  = "inactive"
	CategoryMilestone = "milestone"
)

// Suggestion represents an actionable recommendation about one habit.
type Suggestion struct {
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Habit       string  `json:"habit"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactScore float64 `json:"impact_score"`
}

// AnalysisContext provides all data needed by suggest rules.
type AnalysisContext struct {
	// Today is the reference date streaks were computed against.
	Today time.Time `json:"today"`

	Habits []HabitContext `json:"habits"`
}

// HabitContext provides habit-level data for suggest rules.
type HabitContext struct {
	Name          string            `json:"name"`
	Periodicity   habit.Periodicity `json:"periodicity"`
	StartDate     time.Time         `json:"start_date"`
	Completions   int               `json:"completions"`
	CurrentStreak int               `json:"current_streak"`
	LongestStreak int               `json:"longest_streak"`

	// DaysSinceLast is the number of days since the last completion, or -1
	// if the habit was never completed.
	DaysSinceLast int `json:"days_since_last"`
}

// Rule is a function that examines the analysis context and produces
// zero or more suggestions.
type Rule func(ctx *AnalysisContext) []Suggestion
