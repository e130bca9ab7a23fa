// Package report sequences the analyzers, calculators and evaluators into a
// single hiring-signal report.
package report

import (
	"fmt"
	"time"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/lens"
	"github.com/blackwell-systems/hiresignal/internal/profile"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
	"github.com/blackwell-systems/hiresignal/internal/suggest"
)

// Report is the complete result of analyzing one profile.
type Report struct {
	Login                string                       `json:"login"`
	GeneratedAt          time.Time                    `json:"generated_at"`
	Scores               scoring.Breakdown            `json:"scores"`
	OverallScore         int                          `json:"overall_score"`
	Strengths            []scoring.Signal             `json:"strengths"`
	RedFlags             []scoring.Signal             `json:"red_flags"`
	Recommendations      []suggest.Recommendation     `json:"recommendations"`
	LanguageDistribution map[string]int               `json:"language_distribution"`
	Confidence           scoring.Confidence           `json:"signal_confidence"`
	Lenses               []lens.Result                `json:"recruiter_lenses"`
	CareerAlignments     []lens.Alignment             `json:"career_alignments"`
	Simulations          []suggest.Scenario           `json:"simulations"`
	Readmes              []analyzer.RepoReadme        `json:"readme_analyses"`
	Structures           []analyzer.StructureAnalysis `json:"repo_structures"`
	CommitQuality        analyzer.CommitQuality       `json:"commit_quality"`
	Discoverability      scoring.Discoverability      `json:"discoverability"`
	FirstImpression      scoring.FirstImpression      `json:"first_impression"`
	Snapshot             Snapshot                     `json:"recruiter_snapshot"`
}

// Snapshot condenses the report into what a recruiter reads first.
type Snapshot struct {
	HireReadiness   int    `json:"hire_readiness"`
	HireLabel       string `json:"hire_label"`
	BiggestStrength string `json:"biggest_strength"`
	BiggestConcern  string `json:"biggest_concern"`
	TopFix          string `json:"top_fix"`
	TopFixIncrease  int    `json:"top_fix_increase"`
}

// Analyze builds the report for an assembled input. now is the reference
// time for every recency comparison; the same input and now always produce
// the same report.
func Analyze(in profile.Input, now time.Time) *Report {
	readmes := analyzer.AnalyzeReadmes(in.Readmes)
	structures := analyzer.AnalyzeStructures(in.Trees)
	commits := analyzer.AnalyzeCommitMessages(in.Commits)

	scores := Blend(scoring.Calculate(in, readmes, now), structures, commits)
	overall := scoring.Overall(scores)

	recs := suggest.NewEngine().Run(&suggest.AnalysisContext{
		Profile: in.Profile,
		Repos:   in.Repositories,
		Scores:  scores,
		Readmes: readmes,
	})

	return &Report{
		Login:                in.Profile.Login,
		GeneratedAt:          now,
		Scores:               scores,
		OverallScore:         overall,
		Strengths:            scoring.DetectStrengths(in.Profile, in.Repositories, in.Events, now),
		RedFlags:             scoring.DetectRedFlags(in.Profile, in.Repositories, in.Events, now),
		Recommendations:      recs,
		LanguageDistribution: LanguageDistribution(in.Repositories),
		Confidence:           scoring.SignalConfidence(in.Profile, in.Repositories, in.Events, len(readmes)),
		Lenses:               lens.Evaluate(in, readmes),
		CareerAlignments:     lens.AlignCareers(in.Repositories),
		Simulations:          suggest.Simulate(scores, overall),
		Readmes:              readmes,
		Structures:           structures,
		CommitQuality:        commits,
		Discoverability:      scoring.DiscoverabilityScore(in.Profile, in.Repositories),
		FirstImpression:      scoring.FirstImpressionScore(in.Profile, in.Repositories, readmes, overall),
		Snapshot:             BuildSnapshot(overall, scores, recs),
	}
}

// Blend folds the deeper content analyses into the raw breakdown.
// Engineering maturity takes an even mix with the mean structure score and
// commit consistency a 70/30 mix with the commit-message score. Each blend
// applies only when its analysis has data.
func Blend(b scoring.Breakdown, structures []analyzer.StructureAnalysis, commits analyzer.CommitQuality) scoring.Breakdown {
	if len(structures) > 0 {
		b.EngineeringMaturity = scoring.Clamp(float64(b.EngineeringMaturity)*0.5 + analyzer.MeanStructureScore(structures)*0.5)
	}
	if commits.TotalAnalyzed > 0 {
		b.CommitConsistency = scoring.Clamp(float64(b.CommitConsistency)*0.7 + float64(commits.Score)*0.3)
	}
	return b
}

// LanguageDistribution counts original repositories per primary language.
func LanguageDistribution(repos []profile.Repository) map[string]int {
	dist := make(map[string]int)
	for _, r := range profile.OwnRepos(repos) {
		if r.Language != "" {
			dist[r.Language]++
		}
	}
	return dist
}

// HireLabel bands an overall score into a readiness label.
func HireLabel(score int) string {
	switch {
	case score >= 80:
		return "Hiring Ready"
	case score >= 65:
		return "Competitive"
	case score >= 50:
		return "Foundational"
	default:
		return "Needs Work"
	}
}

// BuildSnapshot picks the first highest and the last lowest dimension in
// declaration order, and restates the top recommendation.
func BuildSnapshot(overall int, scores scoring.Breakdown, recs []suggest.Recommendation) Snapshot {
	best, worst := scoring.Dimensions[0], scoring.Dimensions[0]
	for _, d := range scoring.Dimensions[1:] {
		if scores.Get(d) > scores.Get(best) {
			best = d
		}
		if scores.Get(d) <= scores.Get(worst) {
			worst = d
		}
	}

	s := Snapshot{
		HireReadiness:   overall,
		HireLabel:       HireLabel(overall),
		BiggestStrength: best.Label(),
		BiggestConcern:  fmt.Sprintf("Weak %s (%d/100)", worst.Label(), scores.Get(worst)),
		TopFix:          "Maintain momentum",
	}
	if len(recs) > 0 {
		s.TopFix = recs[0].Title
		s.TopFixIncrease = recs[0].ScoreIncrease
	}
	return s
}
