package scoring

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// FirstImpression contrasts what a recruiter sees in a 15-second scan with
// the full analysis.
type FirstImpression struct {
	QuickScanScore   int      `json:"quick_scan_score"`
	DeepDiveScore    int      `json:"deep_dive_score"`
	QuickScanFactors []string `json:"quick_scan_factors"`
	DeepDiveFactors  []string `json:"deep_dive_factors"`
}

const missingMark = "✗ "

// FirstImpressionScore evaluates the quick-scan surface. The deep-dive score
// is the overall score passed in.
func FirstImpressionScore(p profile.Profile, repos []profile.Repository, readmes []analyzer.RepoReadme, overall int) FirstImpression {
	own := profile.OwnRepos(repos)
	quick := 0
	factors := []string{}

	pass := func(points int, factor string) {
		quick += points
		factors = append(factors, factor)
	}
	fail := func(factor string) {
		factors = append(factors, missingMark+factor)
	}

	if len([]rune(p.Bio)) > 10 {
		pass(20, "Professional bio present")
	} else {
		fail("Missing or weak bio")
	}

	if p.Name != "" {
		pass(10, "Display name set")
	} else {
		fail("No display name")
	}

	if p.HasCustomAvatar() {
		pass(10, "Custom avatar")
	} else {
		fail("Default avatar")
	}

	described, withHomepage := 0, 0
	for _, r := range own {
		if r.DescriptionLen() > 15 {
			described++
		}
		if r.HasHomepage() {
			withHomepage++
		}
	}
	if described >= 3 {
		pass(15, "Repos have clear descriptions")
	} else {
		fail("Repos lack descriptions")
	}

	if len(readmes) >= 2 {
		pass(15, "READMEs found on top repos")
	} else {
		fail("Missing READMEs on top repos")
	}

	switch stars := profile.TotalStars(own); {
	case stars >= 10:
		pass(15, fmt.Sprintf("%d stars visible", stars))
	case stars >= 3:
		pass(8, "Some star traction")
	default:
		fail("Low star count")
	}

	if withHomepage >= 1 {
		pass(10, "Live demo links present")
	} else {
		fail("No live demo links")
	}

	if p.Blog != "" {
		pass(5, "Portfolio link visible")
	}

	deep := []string{fmt.Sprintf("Overall portfolio score: %d/100", overall)}
	if len(readmes) > 0 {
		deep = append(deep, fmt.Sprintf("Avg README quality: %d/100", int(math.Round(analyzer.MeanReadmeScore(readmes)))))
	}
	deep = append(deep,
		fmt.Sprintf("%d languages across %d original repos", len(profile.Languages(own)), len(own)),
		fmt.Sprintf("%d forks vs %d original projects", profile.ForkCount(repos), len(own)),
	)

	return FirstImpression{
		QuickScanScore:   min(100, quick),
		DeepDiveScore:    overall,
		QuickScanFactors: factors,
		DeepDiveFactors:  deep,
	}
}
