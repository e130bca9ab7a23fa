package scoring

import (
	"time"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// Weights maps each dimension to its share of the overall score. The values
// sum to 1.00.
var Weights = map[Dimension]float64{
	ProfileCompleteness: 0.10,
	RepositoryQuality:   0.15,
	CommitConsistency:   0.12,
	Documentation:       0.15,
	CommunityEngagement: 0.08,
	ProjectDiversity:    0.08,
	OwnershipDepth:      0.12,
	EngineeringMaturity: 0.12,
	Impact:              0.08,
}

// Calculate runs all nine calculators over the raw input. No blending with
// structure or commit analyses is applied here.
func Calculate(in profile.Input, readmes []analyzer.RepoReadme, now time.Time) Breakdown {
	return Breakdown{
		ProfileCompleteness: ProfileCompletenessScore(in.Profile),
		RepositoryQuality:   RepositoryQualityScore(in.Repositories),
		CommitConsistency:   CommitConsistencyScore(in.Events, now),
		Documentation:       DocumentationScore(in.Repositories, readmes),
		CommunityEngagement: CommunityEngagementScore(in.Profile, in.Events),
		ProjectDiversity:    ProjectDiversityScore(in.Repositories),
		OwnershipDepth:      OwnershipDepthScore(in.Repositories, in.Events, now),
		EngineeringMaturity: EngineeringMaturityScore(in.Repositories),
		Impact:              ImpactScore(in.Repositories),
	}
}

// Overall returns the weighted sum of the breakdown, rounded and clamped.
func Overall(b Breakdown) int {
	sum := 0.0
	for _, d := range Dimensions {
		sum += float64(b.Get(d)) * Weights[d]
	}
	return Clamp(sum)
}
