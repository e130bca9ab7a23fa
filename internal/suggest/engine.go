package suggest

// Engine runs all registered rules against an AnalysisContext and collects
// the resulting recommendations.
type Engine struct {
	rules    []Rule
	fallback Recommendation
}

// NewEngine creates a new planner with all built-in rules registered in
// evaluation order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			ProfileBasics,
			PinBestRepos,
			BetterReadmes,
			CommitStreak,
			OpenSourceContribution,
			TestsAndCI,
			DeepenOwnership,
			ReadmeQuality,
		},
		fallback: MaintainMomentum,
	}
}

// Run executes all registered rules in order. When no rule fires the
// fallback recommendation is returned alone. The result is sorted by score
// increase, highest first, keeping rule order for ties.
func (e *Engine) Run(ctx *AnalysisContext) []Recommendation {
	var all []Recommendation
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	if len(all) == 0 {
		all = append(all, e.fallback)
	}
	return RankRecommendations(all)
}
