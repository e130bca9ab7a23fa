package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
	"github.com/blackwell-systems/hiresignal/internal/suggest"
)

var now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func sampleInput() profile.Input {
	hireable := true
	return profile.Input{
		Profile: profile.Profile{
			Login: "octo", Name: "Octo Cat", Bio: "Backend engineer who ships reliable APIs.",
			Blog: "https://octo.dev", Location: "Berlin", Followers: 14, Hireable: &hireable,
			AvatarURL: "https://avatars.example.com/u/42",
		},
		Repositories: []profile.Repository{
			{Name: "octo", Description: "Profile README"},
			{Name: "ledger", Language: "Go", Description: "Double-entry accounting api server with audit log", Topics: []string{"go", "api", "docker"}, License: "MIT", Stars: 14, Forks: 3, Size: 2400, Homepage: "https://ledger.octo.dev", CreatedAt: now.AddDate(-2, 0, 0)},
			{Name: "pipeline", Language: "Python", Description: "Testing harness for data pipelines", Topics: []string{"testing", "ci"}, License: "Apache-2.0", Stars: 4, Size: 800, CreatedAt: now.AddDate(-1, 0, 0)},
			{Name: "dotfiles", Fork: true},
		},
		Events: []profile.ActivityEvent{
			{Type: profile.EventPush, Repo: "octo/ledger", CreatedAt: now.Add(-24 * time.Hour)},
			{Type: profile.EventPush, Repo: "octo/ledger", CreatedAt: now.Add(-48 * time.Hour)},
			{Type: profile.EventPush, Repo: "octo/ledger", CreatedAt: now.Add(-72 * time.Hour)},
			{Type: profile.EventPullRequest, Repo: "other/lib", CreatedAt: now.Add(-96 * time.Hour)},
		},
		Readmes: []profile.ReadmeSample{
			{RepoName: "ledger", Content: "# Ledger\n\n## Installation\n\n```\ngo get example.com/ledger\n```\n"},
		},
		Trees: []profile.TreeSample{
			{RepoName: "ledger", Files: []profile.TreeFile{{Path: "cmd/ledger/main.go"}, {Path: "internal/db/db.go"}, {Path: ".github/workflows/ci.yml"}}},
		},
		Commits: []profile.CommitSample{
			{RepoName: "ledger", Messages: []profile.CommitMessage{{Message: "feat: add audit log export"}, {Message: "wip"}}},
		},
	}
}

func TestAnalyze_OverallIsWeightedSum(t *testing.T) {
	r := Analyze(sampleInput(), now)

	sum := 0.0
	for _, d := range scoring.Dimensions {
		v := r.Scores.Get(d)
		assert.GreaterOrEqual(t, v, 0, "dimension %s", d)
		assert.LessOrEqual(t, v, 100, "dimension %s", d)
		sum += float64(v) * scoring.Weights[d]
	}
	assert.Equal(t, scoring.Clamp(sum), r.OverallScore)
	assert.Equal(t, "octo", r.Login)
	assert.Len(t, r.Lenses, 3)
	assert.Len(t, r.CareerAlignments, 5)
	assert.LessOrEqual(t, len(r.Simulations), suggest.MaxScenarios)
	assert.Equal(t, map[string]int{"Go": 1, "Python": 1}, r.LanguageDistribution)
}

func TestAnalyze_Deterministic(t *testing.T) {
	first, err := json.Marshal(Analyze(sampleInput(), now))
	require.NoError(t, err)
	second, err := json.Marshal(Analyze(sampleInput(), now))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAnalyze_EmptyInput(t *testing.T) {
	r := Analyze(profile.Input{}, now)

	assert.Zero(t, r.Scores.RepositoryQuality)
	assert.Zero(t, r.Scores.Documentation)
	assert.Zero(t, r.Scores.ProjectDiversity)
	assert.Zero(t, r.Scores.OwnershipDepth)
	assert.Zero(t, r.Scores.EngineeringMaturity)
	assert.Zero(t, r.Scores.Impact)
	assert.Equal(t, 10, r.Scores.CommitConsistency)
	assert.Equal(t, []string{"No commit data available"}, r.CommitQuality.Concerns)
	assert.Empty(t, r.Readmes)
	assert.Empty(t, r.Structures)
	assert.Equal(t, "Needs Work", r.Snapshot.HireLabel)
}

func TestAnalyze_RecommendationsRanked(t *testing.T) {
	r := Analyze(profile.Input{}, now)

	require.NotEmpty(t, r.Recommendations)
	for i := 1; i < len(r.Recommendations); i++ {
		assert.GreaterOrEqual(t, r.Recommendations[i-1].ScoreIncrease, r.Recommendations[i].ScoreIncrease)
	}
	assert.Equal(t, r.Recommendations[0].Title, r.Snapshot.TopFix)
}

func TestBlend(t *testing.T) {
	raw := scoring.Breakdown{EngineeringMaturity: 40, CommitConsistency: 50}

	unchanged := Blend(raw, nil, analyzer.CommitQuality{})
	assert.Equal(t, raw, unchanged)

	blended := Blend(raw,
		[]analyzer.StructureAnalysis{{Score: 70}, {Score: 90}},
		analyzer.CommitQuality{Score: 81, TotalAnalyzed: 10},
	)
	// 40*0.5 + 80*0.5 = 60
	assert.Equal(t, 60, blended.EngineeringMaturity)
	// 50*0.7 + 81*0.3 = 59.3
	assert.Equal(t, 59, blended.CommitConsistency)
}

func TestBuildSnapshot(t *testing.T) {
	scores := scoring.Breakdown{
		ProfileCompleteness: 90, RepositoryQuality: 90, CommitConsistency: 10,
		Documentation: 50, CommunityEngagement: 10, ProjectDiversity: 40,
		OwnershipDepth: 30, EngineeringMaturity: 20, Impact: 60,
	}
	s := BuildSnapshot(66, scores, nil)

	assert.Equal(t, "Competitive", s.HireLabel)
	assert.Equal(t, "Profile Completeness", s.BiggestStrength)
	assert.Equal(t, "Weak Community Engagement (10/100)", s.BiggestConcern)
	assert.Equal(t, "Maintain momentum", s.TopFix)
	assert.Zero(t, s.TopFixIncrease)
}

func TestHireLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Hiring Ready"},
		{80, "Hiring Ready"},
		{79, "Competitive"},
		{65, "Competitive"},
		{50, "Foundational"},
		{49, "Needs Work"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HireLabel(tt.score), "score %d", tt.score)
	}
}
