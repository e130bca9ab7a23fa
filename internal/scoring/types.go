package scoring

import "math"

// Dimension names one of the nine components of a Breakdown.
type Dimension string

const (
	ProfileCompleteness Dimension = "profile_completeness"
	RepositoryQuality   Dimension = "repository_quality"
	CommitConsistency   Dimension = "commit_consistency"
	Documentation       Dimension = "documentation"
	CommunityEngagement Dimension = "community_engagement"
	ProjectDiversity    Dimension = "project_diversity"
	OwnershipDepth      Dimension = "ownership_depth"
	EngineeringMaturity Dimension = "engineering_maturity"
	Impact              Dimension = "impact"
)

// Dimensions lists every dimension in declaration order. Snapshot tie-breaks
// and rendering depend on this order.
var Dimensions = []Dimension{
	ProfileCompleteness,
	RepositoryQuality,
	CommitConsistency,
	Documentation,
	CommunityEngagement,
	ProjectDiversity,
	OwnershipDepth,
	EngineeringMaturity,
	Impact,
}

var dimensionLabels = map[Dimension]string{
	ProfileCompleteness: "Profile Completeness",
	RepositoryQuality:   "Repository Quality",
	CommitConsistency:   "Consistent Activity",
	Documentation:       "Documentation",
	CommunityEngagement: "Community Engagement",
	ProjectDiversity:    "Project Diversity",
	OwnershipDepth:      "Deep Ownership",
	EngineeringMaturity: "Engineering Maturity",
	Impact:              "Community Impact",
}

// Label returns the human-readable name of the dimension.
func (d Dimension) Label() string {
	if l, ok := dimensionLabels[d]; ok {
		return l
	}
	return string(d)
}

// Breakdown holds the nine dimension scores, each in [0,100].
type Breakdown struct {
	ProfileCompleteness int `json:"profile_completeness" yaml:"profile_completeness"`
	RepositoryQuality   int `json:"repository_quality" yaml:"repository_quality"`
	CommitConsistency   int `json:"commit_consistency" yaml:"commit_consistency"`
	Documentation       int `json:"documentation" yaml:"documentation"`
	CommunityEngagement int `json:"community_engagement" yaml:"community_engagement"`
	ProjectDiversity    int `json:"project_diversity" yaml:"project_diversity"`
	OwnershipDepth      int `json:"ownership_depth" yaml:"ownership_depth"`
	EngineeringMaturity int `json:"engineering_maturity" yaml:"engineering_maturity"`
	Impact              int `json:"impact" yaml:"impact"`
}

// Get returns the score for a single dimension.
func (b Breakdown) Get(d Dimension) int {
	switch d {
	case ProfileCompleteness:
		return b.ProfileCompleteness
	case RepositoryQuality:
		return b.RepositoryQuality
	case CommitConsistency:
		return b.CommitConsistency
	case Documentation:
		return b.Documentation
	case CommunityEngagement:
		return b.CommunityEngagement
	case ProjectDiversity:
		return b.ProjectDiversity
	case OwnershipDepth:
		return b.OwnershipDepth
	case EngineeringMaturity:
		return b.EngineeringMaturity
	case Impact:
		return b.Impact
	}
	return 0
}

// Severity grades a Signal.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Signal is a discrete strength or red-flag finding.
type Signal struct {
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Clamp rounds v half-up and bounds it to [0,100].
func Clamp(v float64) int {
	r := int(math.Floor(v + 0.5))
	return max(0, min(100, r))
}

func capped(v, limit float64) float64 {
	return math.Min(v, limit)
}

// share returns n/total, or 0 when total is zero.
func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
