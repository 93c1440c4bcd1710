package suggest

// DefaultRules are the rules an Engine runs when none are given.
var DefaultRules = []Rule{
	StreakAtRisk,
	LapsedStreak,
	NeverCompleted,
	NearPersonalBest,
}

// Engine evaluates a fixed rule set against an AnalysisContext.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine for the given rules, or DefaultRules when
// called without arguments.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Engine{rules: rules}
}

// Run collects every rule's suggestions and returns them ranked.
func (e *Engine) Run(ctx *AnalysisContext) []Suggestion {
	var all []Suggestion
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	return RankSuggestions(all)
}
