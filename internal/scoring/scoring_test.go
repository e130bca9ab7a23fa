package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.Add(-time.Duration(n) * 24 * time.Hour)
}

func push(repo string, days int) profile.ActivityEvent {
	return profile.ActivityEvent{Type: profile.EventPush, Repo: repo, CreatedAt: daysAgo(days)}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 100, Clamp(140))
	assert.Equal(t, 43, Clamp(42.5))
	assert.Equal(t, 42, Clamp(42.49))
}

func TestProfileCompletenessScore(t *testing.T) {
	hireable := true
	full := profile.Profile{
		Name: "Ada", Bio: "Engineer", Blog: "https://ada.dev", Location: "London",
		Company: "Analytical", Email: "ada@example.com", TwitterUsername: "ada",
		Hireable: &hireable, AvatarURL: "https://avatars.example.com/u/1",
	}
	assert.Equal(t, 100, ProfileCompletenessScore(full))
	assert.Equal(t, 0, ProfileCompletenessScore(profile.Profile{AvatarURL: "https://example.com/identicon.png"}))
}

func TestCalculate_NoOriginalRepos(t *testing.T) {
	in := profile.Input{
		Repositories: []profile.Repository{{Name: "fork", Fork: true, Stars: 50, Language: "Go"}},
	}
	b := Calculate(in, nil, now)

	assert.Zero(t, b.RepositoryQuality)
	assert.Zero(t, b.Documentation)
	assert.Zero(t, b.ProjectDiversity)
	assert.Zero(t, b.OwnershipDepth)
	assert.Zero(t, b.EngineeringMaturity)
	assert.Zero(t, b.Impact)
	assert.Equal(t, 10, b.CommitConsistency)
}

func TestCommitConsistencyScore(t *testing.T) {
	tests := []struct {
		name   string
		events []profile.ActivityEvent
		want   int
	}{
		{"no pushes", []profile.ActivityEvent{{Type: profile.EventIssues, CreatedAt: daysAgo(1)}}, 10},
		// 1 day * 4 + 1 push * 1.5 + 20 recency = 25.5
		{"single recent push", []profile.ActivityEvent{push("a/x", 1)}, 26},
		// 4 + 1.5 + 10 = 15.5
		{"push last month", []profile.ActivityEvent{push("a/x", 20)}, 16},
		// 4 + 1.5 = 5.5
		{"stale push", []profile.ActivityEvent{push("a/x", 60)}, 6},
		// Latest push is re-derived regardless of order: 8 + 3 + 20.
		{"unsorted input", []profile.ActivityEvent{push("a/x", 60), push("a/x", 2)}, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommitConsistencyScore(tt.events, now))
		})
	}
}

func TestRepositoryQualityScore(t *testing.T) {
	repos := []profile.Repository{
		{Name: "a", Description: "A long enough description", Topics: []string{"go"}, License: "MIT", Homepage: "https://a.dev", Stars: 3},
		{Name: "b", Stars: 1},
	}
	// count 6 + stars 8 + desc 10 + topics 7.5 + license 5 + homepage 7.5 = 44
	assert.Equal(t, 44, RepositoryQualityScore(repos))
}

func TestDocumentationScore_ReadmeBonus(t *testing.T) {
	repos := []profile.Repository{{Name: "a"}}
	readmes := []analyzer.RepoReadme{{RepoName: "a", Analysis: analyzer.ReadmeAnalysis{Score: 50}}}

	assert.Equal(t, 0, DocumentationScore(repos, nil))
	assert.Equal(t, 20, DocumentationScore(repos, readmes))
}

func TestOwnershipDepthScore(t *testing.T) {
	repos := []profile.Repository{
		{Name: "big", Size: 900, CreatedAt: daysAgo(400), Description: "A description that is comfortably longer than fifty characters."},
		{Name: "new", Size: 10, CreatedAt: daysAgo(10)},
	}
	events := []profile.ActivityEvent{push("me/big", 1), push("me/big", 2), push("me/big", 3), push("me/new", 1)}

	// large 8 + long-lived 5 + multi-push 8 + detailed 5
	assert.Equal(t, 26, OwnershipDepthScore(repos, events, now))
}

func events(kind string, n int) []profile.ActivityEvent {
	out := make([]profile.ActivityEvent, n)
	for i := range out {
		out[i] = profile.ActivityEvent{Type: kind, Repo: "me/r", CreatedAt: daysAgo(i + 1)}
	}
	return out
}

func repeat(r profile.Repository, n int) []profile.Repository {
	out := make([]profile.Repository, n)
	for i := range out {
		out[i] = r
		out[i].Name = fmt.Sprintf("%s-%d", r.Name, i)
	}
	return out
}

func TestCommunityEngagementScore(t *testing.T) {
	mixed := append(append(events(profile.EventPullRequest, 1), events(profile.EventIssues, 1)...), events(profile.EventFork, 1)...)

	tests := []struct {
		name   string
		p      profile.Profile
		events []profile.ActivityEvent
		want   int
	}{
		{"empty", profile.Profile{}, nil, 0},
		{"followers x2", profile.Profile{Followers: 7}, nil, 14},
		{"followers capped at 30", profile.Profile{Followers: 16}, nil, 30},
		{"gists x3 capped at 15", profile.Profile{PublicGists: 6}, nil, 15},
		{"pull requests x5 capped at 25", profile.Profile{}, events(profile.EventPullRequest, 6), 25},
		{"issues x3 capped at 15", profile.Profile{}, events(profile.EventIssues, 6), 15},
		{"fork events x3 capped at 15", profile.Profile{}, events(profile.EventFork, 6), 15},
		{"pushes ignored", profile.Profile{}, events(profile.EventPush, 20), 0},
		{"one of each", profile.Profile{Followers: 5, PublicGists: 2}, mixed, 27},
		{"everything capped", profile.Profile{Followers: 100, PublicGists: 100},
			append(append(events(profile.EventPullRequest, 10), events(profile.EventIssues, 10)...), events(profile.EventFork, 10)...), 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CommunityEngagementScore(tc.p, tc.events))
		})
	}
}

func TestProjectDiversityScore(t *testing.T) {
	var wide []profile.Repository
	for i := range 12 {
		wide = append(wide, profile.Repository{
			Name: fmt.Sprintf("r%d", i), Language: fmt.Sprintf("L%d", i), Topics: []string{fmt.Sprintf("t%d", i)},
		})
	}

	tests := []struct {
		name  string
		repos []profile.Repository
		want  int
	}{
		{"none", nil, 0},
		{"forks ignored", []profile.Repository{{Name: "f", Fork: true, Language: "Rust", Topics: []string{"x"}}}, 0},
		// languages 2x12 + repos 2x3 + topics 2x3
		{"two repos", []profile.Repository{
			{Name: "a", Language: "Go", Topics: []string{"cli", "go"}},
			{Name: "b", Language: "Python", Topics: []string{"go"}},
			{Name: "f", Fork: true, Language: "Rust"},
		}, 36},
		// languages 5x12=60 capped at 50, repos 5x3, topics 5x3
		{"languages capped at 50", wide[:5:5], 50 + 15 + 15},
		// 50 + repos 36 capped at 30 + topics 36 capped at 20
		{"all capped", wide, 100},
		{"repos capped at 30", repeat(profile.Repository{Name: "x"}, 11), 30},
		{"topics capped at 20", []profile.Repository{{Name: "t", Topics: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}}, 3 + 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ProjectDiversityScore(tc.repos))
		})
	}
}

func TestEngineeringMaturityScore(t *testing.T) {
	full := profile.Repository{Name: "svc", Topics: []string{"docker", "testing", "cli"}, HasWiki: true, HasPages: true, License: "MIT"}
	rich := []string{"go", "web", "api"}

	tests := []struct {
		name  string
		repos []profile.Repository
		want  int
	}{
		{"none", nil, 0},
		// ci 10 + wiki 3 + pages 5 + license 15 + rich topics 5
		{"single complete repo", []profile.Repository{full}, 38},
		// license share drops to half: 10 + 3 + 5 + 7.5 + 5
		{"half licensed", []profile.Repository{full, {Name: "bare"}}, 31},
		{"ci capped at 35", repeat(profile.Repository{Name: "c", Description: "Jest harness"}, 6), 35},
		{"wiki capped at 15", repeat(profile.Repository{Name: "w", HasWiki: true}, 6), 15},
		{"pages capped at 15", repeat(profile.Repository{Name: "p", HasPages: true}, 6), 15},
		{"license is a share", repeat(profile.Repository{Name: "l", License: "MIT"}, 6), 15},
		{"rich topics capped at 20", repeat(profile.Repository{Name: "t", Topics: rich}, 6), 20},
		{"two topics are not rich", []profile.Repository{{Name: "t", Topics: rich[:2]}}, 0},
		{"forks ignored", []profile.Repository{{Name: "f", Fork: true, HasWiki: true, License: "MIT"}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EngineeringMaturityScore(tc.repos))
		})
	}
}

func TestImpactScore(t *testing.T) {
	tests := []struct {
		name  string
		repos []profile.Repository
		want  int
	}{
		{"none", nil, 0},
		// stars 2x5 + forks 1x3 + homepage 5 + issues 5 + watchers 4
		{"single repo", []profile.Repository{{Name: "a", Stars: 2, Forks: 1, Homepage: "https://a.dev", OpenIssues: 1, Watchers: 4}}, 27},
		// mean stars (8+0)/2=4, x5
		{"star ratio per original repo", []profile.Repository{
			{Name: "a", Stars: 8}, {Name: "b"}, {Name: "fork", Fork: true, Stars: 100},
		}, 20},
		{"star ratio capped at 30", []profile.Repository{{Name: "a", Stars: 10}}, 30},
		{"forks capped at 25", []profile.Repository{{Name: "a", Forks: 9}}, 25},
		{"homepages capped at 20", repeat(profile.Repository{Name: "h", Homepage: "https://h.dev"}, 5), 20},
		{"issues counted per repo, capped at 15", repeat(profile.Repository{Name: "i", OpenIssues: 40}, 4), 15},
		{"watchers capped at 10", []profile.Repository{{Name: "a", Watchers: 25}}, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ImpactScore(tc.repos))
		})
	}
}

func TestDescriptionThresholds_CountCharacters(t *testing.T) {
	// Nine CJK characters, 27 bytes.
	short := profile.Repository{Name: "tool", Description: "用于数据分析的工具"}
	require.Equal(t, 9, short.DescriptionLen())

	// count 1x3; the description is under the 10 character bar
	assert.Equal(t, 3, RepositoryQualityScore([]profile.Repository{short}))
	assert.Equal(t, 0, DocumentationScore([]profile.Repository{short}, nil))
	assert.Contains(t, signalLabels(DetectRedFlags(profile.Profile{}, []profile.Repository{short}, nil, now)), "Poor Descriptions")

	// Twelve characters clear the bar.
	long := profile.Repository{Name: "tool", Description: "用于数据分析的命令行工具"}
	assert.Equal(t, 3+20, RepositoryQualityScore([]profile.Repository{long}))
	assert.NotContains(t, signalLabels(DetectRedFlags(profile.Profile{}, []profile.Repository{long}, nil, now)), "Poor Descriptions")
}

func TestHasCITopic_MatchesExactTags(t *testing.T) {
	assert.True(t, hasCITopic(profile.Repository{Topics: []string{"go", "github-actions"}}))
	assert.False(t, hasCITopic(profile.Repository{Topics: []string{"Docker"}}))
	assert.False(t, hasCITopic(profile.Repository{Topics: []string{"ci-cd"}}))
}

func TestOverall_WeightedSum(t *testing.T) {
	b := Breakdown{
		ProfileCompleteness: 80, RepositoryQuality: 60, CommitConsistency: 40,
		Documentation: 50, CommunityEngagement: 30, ProjectDiversity: 70,
		OwnershipDepth: 20, EngineeringMaturity: 45, Impact: 10,
	}
	sum := 0.0
	for _, d := range Dimensions {
		sum += float64(b.Get(d)) * Weights[d]
	}
	assert.Equal(t, Clamp(sum), Overall(b))
	assert.Equal(t, 100, Overall(Breakdown{100, 100, 100, 100, 100, 100, 100, 100, 100}))

	total := 0.0
	for _, w := range Weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestDetectRedFlags_ForkHeavyAndInactive(t *testing.T) {
	repos := make([]profile.Repository, 0, 10)
	for i := 0; i < 9; i++ {
		repos = append(repos, profile.Repository{Name: "fork", Fork: true})
	}
	repos = append(repos, profile.Repository{Name: "own", Size: 5})

	flags := DetectRedFlags(profile.Profile{}, repos, []profile.ActivityEvent{push("me/own", 120)}, now)

	labels := signalLabels(flags)
	assert.Contains(t, labels, "Missing Bio")
	assert.Contains(t, labels, "No Display Name")
	assert.Contains(t, labels, "Fork Heavy Profile")
	assert.Contains(t, labels, "Extended Inactivity")
	assert.Contains(t, labels, "Few Original Projects")
	assert.NotContains(t, labels, "No Recent Activity")

	for _, f := range flags {
		if f.Label == "Fork Heavy Profile" {
			assert.Equal(t, "90% of repos are forks; shows limited original work", f.Description)
		}
		if f.Label == "Extended Inactivity" {
			assert.Equal(t, "Last commit was 120 days ago", f.Description)
		}
	}
}

func TestDetectRedFlags_TutorialHeavy(t *testing.T) {
	repos := []profile.Repository{
		{Name: "react-tutorial", Description: "Following a course", Topics: []string{"learning"}},
		{Name: "udemy-node", Description: "Course project for node", Topics: []string{"node"}},
		{Name: "hello-world", Description: "First repo ever created", Topics: []string{"intro"}},
		{Name: "service", Description: "Real production service", Topics: []string{"go"}},
	}
	labels := signalLabels(DetectRedFlags(profile.Profile{Bio: "x", Name: "y"}, repos, nil, now))

	assert.Contains(t, labels, "Tutorial-Heavy Portfolio")
	assert.Contains(t, labels, "No Recent Activity")
	assert.NotContains(t, labels, "Missing Topics/Tags")
}

func TestDetectStrengths(t *testing.T) {
	p := profile.Profile{Name: "Ada", Bio: "Engineer", Blog: "https://ada.dev", Followers: 12}
	repos := []profile.Repository{
		{Name: "a", Language: "Go", Stars: 8, License: "MIT", Topics: []string{"docker"}, Size: 2000, Forks: 3},
		{Name: "b", Language: "Rust", Stars: 2, License: "MIT", Topics: []string{"ci"}, Size: 1500, Forks: 2},
		{Name: "c", Language: "Python", License: "MIT"},
	}
	labels := signalLabels(DetectStrengths(p, repos, []profile.ActivityEvent{push("me/a", 2)}, now))

	assert.ElementsMatch(t, []string{
		"Star Power", "Growing Network", "Professional Profile", "Polyglot Developer",
		"Active Contributor", "Open Source Mindset", "Engineering Practices",
		"Deep Contributor", "Community Impact",
	}, labels)
}

func TestSignalConfidence(t *testing.T) {
	repos := make([]profile.Repository, 10)
	events := make([]profile.ActivityEvent, 0, 50)
	for i := 0; i < 50; i++ {
		events = append(events, push("me/a", i))
	}
	c := SignalConfidence(profile.Profile{Bio: "b", Name: "n"}, repos, events, 3)

	assert.Equal(t, 100, c.Score)
	assert.Equal(t, "High", c.Label)
	assert.Equal(t, c.Score, c.DataCoverage)

	low := SignalConfidence(profile.Profile{}, nil, nil, 0)
	assert.Equal(t, 0, low.Score)
	assert.Equal(t, "Low", low.Label)
	assert.Equal(t, []string{"Limited repos for analysis", "Limited recent activity data"}, low.Factors)

	assert.Equal(t, "Medium", ConfidenceLabel(50))
}

func TestDiscoverabilityScore(t *testing.T) {
	p := profile.Profile{
		Login: "ada",
		Bio:   "Backend engineer building distributed systems and data pipelines for fintech startups across Europe.",
		Blog:  "https://www.linkedin.com/in/ada",
		Email: "ada@example.com",
	}
	repos := []profile.Repository{
		{Name: "Ada", Description: "Profile README for my account"},
		{Name: "one", Homepage: "https://one.dev", Description: "First showcase project with docs", Stars: 5},
		{Name: "two", Homepage: "https://two.dev", Description: "Second showcase project with docs", Stars: 4},
		{Name: "three", Homepage: "https://three.dev", Stars: 3},
	}
	d := DiscoverabilityScore(p, repos)

	require.GreaterOrEqual(t, d.BioLength, 100)
	assert.True(t, d.HasProfileReadme)
	assert.True(t, d.HasLinkedIn)
	assert.True(t, d.HasShowcase)
	assert.Equal(t, 3, d.DemoLinkCount)
	assert.Equal(t, 100, d.Score)
	assert.Empty(t, d.Missing)
}

func TestFirstImpressionScore(t *testing.T) {
	fi := FirstImpressionScore(profile.Profile{}, []profile.Repository{{Name: "f", Fork: true}}, nil, 37)

	assert.Equal(t, 0, fi.QuickScanScore)
	assert.Equal(t, 37, fi.DeepDiveScore)
	assert.Equal(t, "✗ Missing or weak bio", fi.QuickScanFactors[0])
	assert.Equal(t, []string{
		"Overall portfolio score: 37/100",
		"0 languages across 0 original repos",
		"1 forks vs 0 original projects",
	}, fi.DeepDiveFactors)
}

func TestDimensionLabels(t *testing.T) {
	assert.Len(t, Dimensions, 9)
	assert.Equal(t, "Consistent Activity", CommitConsistency.Label())
	assert.Equal(t, "Community Impact", Impact.Label())
}

func signalLabels(signals []Signal) []string {
	out := make([]string, 0, len(signals))
	for _, s := range signals {
		out = append(out, s.Label)
	}
	return out
}
