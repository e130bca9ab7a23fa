package suggest

import (
	"sort"

	"github.com/blackwell-systems/hiresignal/internal/scoring"
)

// MaxScenarios bounds the number of projected scenarios.
const MaxScenarios = 5

// Scenario projects the overall score after a single improvement.
type Scenario struct {
	Label         string `json:"label"`
	Description   string `json:"description"`
	ScoreIncrease int    `json:"score_increase"`
	NewScore      int    `json:"new_score"`
}

type scenarioRule struct {
	dimension   scoring.Dimension
	below       int
	label       string
	description string
	increase    int
}

var scenarioRules = []scenarioRule{
	{scoring.Documentation, 60, "Add READMEs to top 3 repos", "Add screenshots, setup instructions, and architecture docs", 9},
	{scoring.EngineeringMaturity, 50, "Add tests to 3 major repos", "Add testing frameworks and CI/CD pipelines", 8},
	{scoring.CommitConsistency, 50, "Commit daily for 2 weeks", "Build a consistent commit streak to show dedication", 7},
	{scoring.ProfileCompleteness, 70, "Complete your profile", "Add bio, website, company, and location", 5},
	{scoring.OwnershipDepth, 50, "Deep-dive into 2 projects", "Add 20+ commits over 3 months to show ownership", 7},
	{scoring.CommunityEngagement, 40, "Submit 5 open-source PRs", "Contribute to projects you use daily", 5},
}

// Simulate evaluates every scenario rule against the breakdown and returns
// up to MaxScenarios projections, largest gain first.
func Simulate(scores scoring.Breakdown, overall int) []Scenario {
	scenarios := []Scenario{}
	for _, r := range scenarioRules {
		if scores.Get(r.dimension) >= r.below {
			continue
		}
		scenarios = append(scenarios, Scenario{
			Label:         r.label,
			Description:   r.description,
			ScoreIncrease: r.increase,
			NewScore:      min(100, overall+r.increase),
		})
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].ScoreIncrease > scenarios[j].ScoreIncrease
	})
	if len(scenarios) > MaxScenarios {
		scenarios = scenarios[:MaxScenarios]
	}
	return scenarios
}
