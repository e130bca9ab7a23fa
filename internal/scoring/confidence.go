package scoring

import "github.com/blackwell-systems/hiresignal/internal/profile"

// Confidence summarizes how much data backed the analysis.
type Confidence struct {
	Score        int      `json:"score"`
	Label        string   `json:"label"`
	DataCoverage int      `json:"data_coverage"`
	Factors      []string `json:"factors"`
}

// SignalConfidence rates data coverage from sample sizes. readmeCount is the
// number of analyzed README samples.
func SignalConfidence(p profile.Profile, repos []profile.Repository, events []profile.ActivityEvent, readmeCount int) Confidence {
	factors := []string{}
	coverage := 0.0

	switch {
	case len(repos) >= 10:
		coverage += 20
		factors = append(factors, "Sufficient repo sample size")
	case len(repos) >= 5:
		coverage += 10
		factors = append(factors, "Moderate repo sample")
	default:
		factors = append(factors, "Limited repos for analysis")
	}

	switch {
	case len(events) >= 50:
		coverage += 20
		factors = append(factors, "Rich activity history")
	case len(events) >= 20:
		coverage += 10
		factors = append(factors, "Moderate activity data")
	default:
		factors = append(factors, "Limited recent activity data")
	}

	if p.Bio != "" && p.Name != "" {
		coverage += 15
		factors = append(factors, "Profile identity verified")
	}

	switch {
	case readmeCount >= 3:
		coverage += 20
		factors = append(factors, "README content analyzed")
	case readmeCount >= 1:
		coverage += 10
		factors = append(factors, "Partial README data")
	}

	if len(profile.OwnRepos(repos)) >= 5 {
		coverage += 15
		factors = append(factors, "Multiple original projects")
	}
	if profile.CountEvents(events, profile.EventPush) >= 10 {
		coverage += 10
		factors = append(factors, "Strong commit data")
	}

	score := Clamp(coverage)
	return Confidence{
		Score:        score,
		Label:        ConfidenceLabel(score),
		DataCoverage: score,
		Factors:      factors,
	}
}

// ConfidenceLabel bands a confidence score into High, Medium or Low.
func ConfidenceLabel(score int) string {
	switch {
	case score >= 80:
		return "High"
	case score >= 50:
		return "Medium"
	default:
		return "Low"
	}
}
