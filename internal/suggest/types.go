// Package suggest plans improvement recommendations and projects what-if
// score scenarios from a score breakdown.
package suggest

import (
	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
)

// Impact levels for recommendations.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Recommendation is an actionable improvement with a predicted score gain.
type Recommendation struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Impact        string `json:"impact"`
	Category      string `json:"category"`
	ScoreIncrease int    `json:"score_increase"`
}

// AnalysisContext provides all data needed by the planner rules. Scores is
// the blended breakdown.
type AnalysisContext struct {
	Profile profile.Profile       `json:"profile"`
	Repos   []profile.Repository  `json:"repos"`
	Scores  scoring.Breakdown     `json:"scores"`
	Readmes []analyzer.RepoReadme `json:"readmes"`
}

// Rule is a function that examines the analysis context and produces
// zero or more recommendations.
type Rule func(ctx *AnalysisContext) []Recommendation
