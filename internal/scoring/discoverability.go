package scoring

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// Discoverability rates how easily a recruiter can find and understand the
// profile.
type Discoverability struct {
	Score            int      `json:"score"`
	BioLength        int      `json:"bio_length"`
	HasPortfolioLink bool     `json:"has_portfolio_link"`
	HasSocialLinks   bool     `json:"has_social_links"`
	HasProfileReadme bool     `json:"has_profile_readme"`
	HasLinkedIn      bool     `json:"has_linkedin"`
	HasShowcase      bool     `json:"has_showcase"`
	DemoLinkCount    int      `json:"demo_link_count"`
	Factors          []string `json:"factors"`
	Missing          []string `json:"missing"`
}

// DiscoverabilityScore evaluates profile links, the profile README repository
// and how well the top original repositories present themselves.
func DiscoverabilityScore(p profile.Profile, repos []profile.Repository) Discoverability {
	d := Discoverability{
		BioLength:        len([]rune(p.Bio)),
		HasPortfolioLink: p.Blog != "",
		HasSocialLinks:   p.TwitterUsername != "" || p.Email != "",
		HasLinkedIn:      strings.Contains(strings.ToLower(p.Blog), "linkedin"),
		Factors:          []string{},
		Missing:          []string{},
	}
	score := 0

	switch {
	case d.BioLength >= 100:
		score += 20
		d.Factors = append(d.Factors, fmt.Sprintf("Rich bio (%d chars)", d.BioLength))
	case d.BioLength >= 30:
		score += 10
		d.Factors = append(d.Factors, "Bio present")
	default:
		d.Missing = append(d.Missing, "Detailed bio (100+ chars)")
	}

	if d.HasPortfolioLink {
		score += 15
		d.Factors = append(d.Factors, "Portfolio/website linked")
	} else {
		d.Missing = append(d.Missing, "Portfolio link")
	}

	if d.HasSocialLinks {
		score += 10
		d.Factors = append(d.Factors, "Social links present")
	} else {
		d.Missing = append(d.Missing, "Social links (Twitter/email)")
	}

	if d.HasLinkedIn {
		score += 10
		d.Factors = append(d.Factors, "LinkedIn linked")
	}

	for _, r := range repos {
		if strings.EqualFold(r.Name, p.Login) {
			d.HasProfileReadme = true
			break
		}
	}
	if d.HasProfileReadme {
		score += 15
		d.Factors = append(d.Factors, "Profile README repo found")
	} else {
		d.Missing = append(d.Missing, "Profile README")
	}

	for _, r := range profile.OwnRepos(repos) {
		if r.HasHomepage() {
			d.DemoLinkCount++
		}
	}
	switch {
	case d.DemoLinkCount >= 3:
		score += 15
		d.Factors = append(d.Factors, fmt.Sprintf("%d repos with live demos", d.DemoLinkCount))
	case d.DemoLinkCount >= 1:
		score += 8
		d.Factors = append(d.Factors, fmt.Sprintf("%d demo link(s)", d.DemoLinkCount))
	default:
		d.Missing = append(d.Missing, "Live demo links on repos")
	}

	described := 0
	for _, r := range profile.TopByStars(repos, 6) {
		if r.DescriptionLen() > 20 {
			described++
		}
	}
	d.HasShowcase = described >= 3
	if d.HasShowcase {
		score += 15
		d.Factors = append(d.Factors, "Top repos well-described")
	} else {
		d.Missing = append(d.Missing, "Better showcase repo descriptions")
	}

	d.Score = Clamp(float64(score))
	return d
}
