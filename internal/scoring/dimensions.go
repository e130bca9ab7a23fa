package scoring

import (
	"time"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// ciKeywords mark a repository as carrying CI or testing signals when found
// in its description or topics.
var ciKeywords = []string{
	"ci", "cd", "docker", "kubernetes", "github-actions", "travis", "circleci",
	"jenkins", "test", "testing", "jest", "pytest", "mocha",
}

const ownershipAge = 180 * 24 * time.Hour

// ProfileCompletenessScore grants fixed points for each filled-in profile field.
//
// Scoring breakdown:
//   - Display name:       20 points
//   - Bio:                20 points
//   - Blog/website:       15 points
//   - Location:           10 points
//   - Company:            10 points
//   - Public email:       10 points
//   - Twitter handle:      5 points
//   - Hireable flag:       5 points
//   - Non-default avatar:  5 points
func ProfileCompletenessScore(p profile.Profile) int {
	score := 0.0
	if p.Name != "" {
		score += 20
	}
	if p.Bio != "" {
		score += 20
	}
	if p.Blog != "" {
		score += 15
	}
	if p.Location != "" {
		score += 10
	}
	if p.Company != "" {
		score += 10
	}
	if p.Email != "" {
		score += 10
	}
	if p.TwitterUsername != "" {
		score += 5
	}
	if p.IsHireable() {
		score += 5
	}
	if p.HasCustomAvatar() {
		score += 5
	}
	return Clamp(score)
}

// RepositoryQualityScore rates the original repositories on volume, stars and
// how consistently they carry descriptions, topics, licenses and homepages.
func RepositoryQualityScore(repos []profile.Repository) int {
	own := profile.OwnRepos(repos)
	if len(own) == 0 {
		return 0
	}

	var withDesc, withTopics, withLicense, withHomepage int
	for _, r := range own {
		if r.DescriptionLen() > 10 {
			withDesc++
		}
		if len(r.Topics) > 0 {
			withTopics++
		}
		if r.HasLicense() {
			withLicense++
		}
		if r.HasHomepage() {
			withHomepage++
		}
	}

	score := capped(float64(len(own))*3, 20)
	score += capped(float64(profile.TotalStars(own))*2, 20)
	score += share(withDesc, len(own)) * 20
	score += share(withTopics, len(own)) * 15
	score += share(withLicense, len(own)) * 10
	score += share(withHomepage, len(own)) * 15
	return Clamp(score)
}

// CommitConsistencyScore rates push activity by distinct active days, push
// volume and recency relative to now. Without any push events the score
// floors at 10.
func CommitConsistencyScore(events []profile.ActivityEvent, now time.Time) int {
	pushes := profile.EventsOfType(events, profile.EventPush)
	if len(pushes) == 0 {
		return 10
	}

	days := make(map[string]bool)
	for _, e := range pushes {
		days[e.Day()] = true
	}

	score := capped(float64(len(days))*4, 50)
	score += capped(float64(len(pushes))*1.5, 30)

	if latest, ok := profile.LatestEvent(events, profile.EventPush); ok {
		switch since := profile.DaysSince(latest.CreatedAt, now); {
		case since < 7:
			score += 20
		case since < 30:
			score += 10
		}
	}
	return Clamp(score)
}

// DocumentationScore rates descriptions, topics and homepages across original
// repositories, plus up to 40 points scaled from the mean README score.
func DocumentationScore(repos []profile.Repository, readmes []analyzer.RepoReadme) int {
	own := profile.OwnRepos(repos)
	if len(own) == 0 {
		return 0
	}

	var withDesc, withTopics, withHomepage int
	for _, r := range own {
		if r.DescriptionLen() > 20 {
			withDesc++
		}
		if len(r.Topics) >= 2 {
			withTopics++
		}
		if r.HasHomepage() {
			withHomepage++
		}
	}

	score := share(withDesc, len(own)) * 25
	score += share(withTopics, len(own)) * 20
	score += share(withHomepage, len(own)) * 15
	if len(readmes) > 0 {
		score += analyzer.MeanReadmeScore(readmes) / 100 * 40
	}
	return Clamp(score)
}

// CommunityEngagementScore rates followers, gists and collaborative events.
func CommunityEngagementScore(p profile.Profile, events []profile.ActivityEvent) int {
	score := capped(float64(p.Followers)*2, 30)
	score += capped(float64(p.PublicGists)*3, 15)
	score += capped(float64(profile.CountEvents(events, profile.EventPullRequest))*5, 25)
	score += capped(float64(profile.CountEvents(events, profile.EventIssues))*3, 15)
	score += capped(float64(profile.CountEvents(events, profile.EventFork))*3, 15)
	return Clamp(score)
}

// ProjectDiversityScore rates language, repository and topic breadth.
func ProjectDiversityScore(repos []profile.Repository) int {
	own := profile.OwnRepos(repos)

	topics := make(map[string]bool)
	for _, r := range own {
		for _, t := range r.Topics {
			topics[t] = true
		}
	}

	score := capped(float64(len(profile.Languages(own)))*12, 50)
	score += capped(float64(len(own))*3, 30)
	score += capped(float64(len(topics))*3, 20)
	return Clamp(score)
}

// OwnershipDepthScore rates sustained investment: large and long-lived
// repositories, repeated pushes to the same repository and detailed
// descriptions.
func OwnershipDepthScore(repos []profile.Repository, events []profile.ActivityEvent, now time.Time) int {
	own := profile.OwnRepos(repos)
	if len(own) == 0 {
		return 0
	}

	cutoff := now.Add(-ownershipAge)
	var large, longLived, detailed int
	for _, r := range own {
		if r.Size > 500 {
			large++
		}
		if r.CreatedAt.Before(cutoff) {
			longLived++
		}
		if r.DescriptionLen() > 50 {
			detailed++
		}
	}

	pushesPerRepo := make(map[string]int)
	for _, e := range profile.EventsOfType(events, profile.EventPush) {
		pushesPerRepo[e.Repo]++
	}
	multiPush := 0
	for _, n := range pushesPerRepo {
		if n >= 3 {
			multiPush++
		}
	}

	score := capped(float64(large)*8, 25)
	score += capped(float64(longLived)*5, 20)
	score += capped(float64(multiPush)*8, 30)
	score += capped(float64(detailed)*5, 25)
	return Clamp(score)
}

// EngineeringMaturityScore rates CI/testing keywords, wiki and pages usage,
// license coverage and topic richness.
func EngineeringMaturityScore(repos []profile.Repository) int {
	own := profile.OwnRepos(repos)
	if len(own) == 0 {
		return 0
	}

	var withCI, withWiki, withPages, withLicense, richTopics int
	for _, r := range own {
		if profile.ContainsAny(profile.SearchText(r, false), ciKeywords) {
			withCI++
		}
		if r.HasWiki {
			withWiki++
		}
		if r.HasPages {
			withPages++
		}
		if r.HasLicense() {
			withLicense++
		}
		if len(r.Topics) >= 3 {
			richTopics++
		}
	}

	score := capped(float64(withCI)*10, 35)
	score += capped(float64(withWiki)*3, 15)
	score += capped(float64(withPages)*5, 15)
	score += share(withLicense, len(own)) * 15
	score += capped(float64(richTopics)*5, 20)
	return Clamp(score)
}

// ImpactScore rates how much others use the work: stars per repository,
// forks, live homepages, open issues and watchers.
func ImpactScore(repos []profile.Repository) int {
	own := profile.OwnRepos(repos)
	if len(own) == 0 {
		return 0
	}

	var withHomepage, withIssues, watchers int
	for _, r := range own {
		if r.HasHomepage() {
			withHomepage++
		}
		if r.OpenIssues > 0 {
			withIssues++
		}
		watchers += r.Watchers
	}

	score := capped(share(profile.TotalStars(own), len(own))*5, 30)
	score += capped(float64(profile.TotalForks(own))*3, 25)
	score += capped(float64(withHomepage)*5, 20)
	score += capped(float64(withIssues)*5, 15)
	score += capped(float64(watchers), 10)
	return Clamp(score)
}

// hasCITopic reports whether any topic is one of the CI-flavoured tags used
// by the Engineering Practices strength.
func hasCITopic(r profile.Repository) bool {
	for _, t := range r.Topics {
		switch t {
		case "docker", "ci", "testing", "github-actions":
			return true
		}
	}
	return false
}
