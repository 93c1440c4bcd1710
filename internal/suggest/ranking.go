package suggest

import (
	"cmp"
	"slices"
)

// RankSuggestions returns a copy ordered by priority (critical first), then
// by ImpactScore descending. Equal suggestions keep their relative order.
func RankSuggestions(suggestions []Suggestion) []Suggestion {
	ranked := slices.Clone(suggestions)
	slices.SortStableFunc(ranked, func(a, b Suggestion) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(b.ImpactScore, a.ImpactScore)
	})
	return ranked
}

// ComputeImpact scores a suggestion as (streakAtStake+1) * urgency / effort.
// urgency is in [0, 1]; a single completion costs effort 1.0. Non-positive
// effort scores 0.
func ComputeImpact(streakAtStake int, urgency, effort float64) float64 {
	if effort <= 0 {
		return 0
	}
	return float64(streakAtStake+1) * urgency / effort
}
