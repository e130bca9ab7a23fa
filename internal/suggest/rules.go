package suggest

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// MaintainMomentum is returned when no other rule fires.
var MaintainMomentum = Recommendation{
	Title:         "Maintain Your Momentum",
	Description:   "Your profile is strong! Keep shipping and documenting. Consider writing technical blog posts.",
	Impact:        ImpactLow,
	Category:      "Growth",
	ScoreIncrease: 2,
}

// ProfileBasics suggests a bio and a portfolio link when profile
// completeness is below 70.
func ProfileBasics(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.ProfileCompleteness >= 70 {
		return nil
	}
	var recs []Recommendation
	if ctx.Profile.Bio == "" {
		recs = append(recs, Recommendation{
			Title:         "Add a Professional Bio",
			Description:   "Write 1-2 sentences about your expertise. Recruiters scan bios first.",
			Impact:        ImpactHigh,
			Category:      "Profile",
			ScoreIncrease: 6,
		})
	}
	if ctx.Profile.Blog == "" {
		recs = append(recs, Recommendation{
			Title:         "Link Your Portfolio/Website",
			Description:   "Add a personal site or LinkedIn URL for more context.",
			Impact:        ImpactMedium,
			Category:      "Profile",
			ScoreIncrease: 4,
		})
	}
	return recs
}

// PinBestRepos fires when repository quality is below 60.
func PinBestRepos(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.RepositoryQuality >= 60 {
		return nil
	}
	return []Recommendation{{
		Title:         "Pin Your Best Repositories",
		Description:   "Select 4-6 repos that showcase your strongest work. Add detailed descriptions and demo links.",
		Impact:        ImpactHigh,
		Category:      "Repositories",
		ScoreIncrease: 8,
	}}
}

// BetterReadmes fires when documentation is below 50, adding a topic-tag
// suggestion when any original repository has no topics.
func BetterReadmes(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.Documentation >= 50 {
		return nil
	}
	recs := []Recommendation{{
		Title:         "Write Better READMEs",
		Description:   "Add screenshots, setup instructions, tech stack, and project purpose. Include architecture diagrams and deployment instructions.",
		Impact:        ImpactHigh,
		Category:      "Documentation",
		ScoreIncrease: 9,
	}}

	noTopics := 0
	for _, r := range profile.OwnRepos(ctx.Repos) {
		if len(r.Topics) == 0 {
			noTopics++
		}
	}
	if noTopics > 0 {
		recs = append(recs, Recommendation{
			Title:         "Add Topic Tags",
			Description:   fmt.Sprintf("%d repos lack topics. Add 3-5 relevant tags for discoverability.", noTopics),
			Impact:        ImpactMedium,
			Category:      "Documentation",
			ScoreIncrease: 4,
		})
	}
	return recs
}

// CommitStreak fires when commit consistency is below 50.
func CommitStreak(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.CommitConsistency >= 50 {
		return nil
	}
	return []Recommendation{{
		Title:         "Build a Commit Streak",
		Description:   "Aim for 3-4 commits per week. Consistent activity signals dedication.",
		Impact:        ImpactHigh,
		Category:      "Activity",
		ScoreIncrease: 7,
	}}
}

// OpenSourceContribution fires when community engagement is below 40.
func OpenSourceContribution(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.CommunityEngagement >= 40 {
		return nil
	}
	return []Recommendation{{
		Title:         "Contribute to Open Source",
		Description:   "Submit PRs to projects you use. Even docs fixes show collaboration.",
		Impact:        ImpactMedium,
		Category:      "Community",
		ScoreIncrease: 5,
	}}
}

// TestsAndCI fires when engineering maturity is below 40.
func TestsAndCI(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.EngineeringMaturity >= 40 {
		return nil
	}
	return []Recommendation{{
		Title:         "Add Tests & CI/CD",
		Description:   "Add testing frameworks and GitHub Actions to your top 3 repos. Shows engineering rigor.",
		Impact:        ImpactHigh,
		Category:      "Engineering",
		ScoreIncrease: 8,
	}}
}

// DeepenOwnership fires when ownership depth is below 40.
func DeepenOwnership(ctx *AnalysisContext) []Recommendation {
	if ctx.Scores.OwnershipDepth >= 40 {
		return nil
	}
	return []Recommendation{{
		Title:         "Deepen Project Ownership",
		Description:   "Focus on 2-3 projects with sustained commits over months. Deep work beats breadth.",
		Impact:        ImpactHigh,
		Category:      "Ownership",
		ScoreIncrease: 7,
	}}
}

// ReadmeQuality fires when analyzed READMEs average below 50, naming the
// first three gaps of the top repository's README.
func ReadmeQuality(ctx *AnalysisContext) []Recommendation {
	if len(ctx.Readmes) == 0 || analyzer.MeanReadmeScore(ctx.Readmes) >= 50 {
		return nil
	}
	missing := ctx.Readmes[0].Analysis.Missing
	top := missing[:min(3, len(missing))]
	return []Recommendation{{
		Title: "Enhance README Quality",
		Description: fmt.Sprintf(
			"Your top repos are missing: %s. Adding these will dramatically improve recruiter impression.",
			strings.Join(top, ", "),
		),
		Impact:        ImpactHigh,
		Category:      "Documentation",
		ScoreIncrease: 9,
	}}
}
