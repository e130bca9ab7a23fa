package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

var tutorialKeywords = []string{
	"tutorial", "course", "udemy", "coursera", "freecodecamp", "todo-app", "hello-world", "learn",
}

// DetectStrengths evaluates every strength rule independently.
func DetectStrengths(p profile.Profile, repos []profile.Repository, events []profile.ActivityEvent, now time.Time) []Signal {
	signals := []Signal{}
	own := profile.OwnRepos(repos)

	if stars := profile.TotalStars(own); stars >= 10 {
		signals = append(signals, Signal{"Star Power", fmt.Sprintf("%d total stars: community validation", stars), SeverityHigh})
	}
	if p.Followers >= 10 {
		signals = append(signals, Signal{"Growing Network", fmt.Sprintf("%d followers indicates visibility", p.Followers), SeverityMedium})
	}
	if p.Bio != "" && p.Name != "" && p.Blog != "" {
		signals = append(signals, Signal{"Professional Profile", "Complete profile with bio, name, and website", SeverityHigh})
	}
	if langs := len(profile.Languages(own)); langs >= 3 {
		signals = append(signals, Signal{"Polyglot Developer", fmt.Sprintf("Proficient in %d languages", langs), SeverityMedium})
	}
	if latest, ok := profile.LatestEvent(events, profile.EventPush); ok && profile.DaysSince(latest.CreatedAt, now) < 7 {
		signals = append(signals, Signal{"Active Contributor", "Pushed code in the last week", SeverityHigh})
	}

	var licensed, ciRepos, large int
	for _, r := range own {
		if r.HasLicense() {
			licensed++
		}
		if hasCITopic(r) {
			ciRepos++
		}
		if r.Size > 1000 {
			large++
		}
	}
	if licensed >= 3 {
		signals = append(signals, Signal{"Open Source Mindset", "Multiple licensed projects", SeverityMedium})
	}
	if ciRepos >= 2 {
		signals = append(signals, Signal{"Engineering Practices", "CI/CD and testing signals detected", SeverityHigh})
	}
	if large >= 2 {
		signals = append(signals, Signal{"Deep Contributor", fmt.Sprintf("%d substantial codebases maintained", large), SeverityHigh})
	}
	if forks := profile.TotalForks(own); forks >= 5 {
		signals = append(signals, Signal{"Community Impact", fmt.Sprintf("%d forks: others build on your work", forks), SeverityMedium})
	}

	return signals
}

// DetectRedFlags evaluates every red-flag rule independently.
func DetectRedFlags(p profile.Profile, repos []profile.Repository, events []profile.ActivityEvent, now time.Time) []Signal {
	signals := []Signal{}
	own := profile.OwnRepos(repos)

	if p.Bio == "" {
		signals = append(signals, Signal{"Missing Bio", "No bio set; recruiters skip profiles without introductions", SeverityHigh})
	}
	if p.Name == "" {
		signals = append(signals, Signal{"No Display Name", "Using only username feels anonymous", SeverityMedium})
	}

	var weakDesc, empty, tutorials, noTopics int
	for _, r := range own {
		if r.DescriptionLen() < 10 {
			weakDesc++
		}
		if r.Size < 10 {
			empty++
		}
		if profile.ContainsAny(profile.SearchText(r, true), tutorialKeywords) {
			tutorials++
		}
		if len(r.Topics) == 0 {
			noTopics++
		}
	}

	if float64(weakDesc) > float64(len(own))*0.5 {
		signals = append(signals, Signal{"Poor Descriptions", fmt.Sprintf("%d repos lack meaningful descriptions", weakDesc), SeverityHigh})
	}
	if profile.CountEvents(events, profile.EventPush) == 0 {
		signals = append(signals, Signal{"No Recent Activity", "No public commits visible; appears inactive", SeverityHigh})
	}
	if len(own) < 3 {
		signals = append(signals, Signal{"Few Original Projects", fmt.Sprintf("Only %d non-forked repos", len(own)), SeverityMedium})
	}

	// Forks are measured against all repositories, originals included.
	if forks := profile.ForkCount(repos); forks > 0 && share(forks, len(repos)) > 0.8 {
		pct := int(math.Round(share(forks, len(repos)) * 100))
		signals = append(signals, Signal{"Fork Heavy Profile", fmt.Sprintf("%d%% of repos are forks; shows limited original work", pct), SeverityHigh})
	}

	if latest, ok := profile.LatestEvent(events, profile.EventPush); ok {
		if since := profile.DaysSince(latest.CreatedAt, now); since > 90 {
			signals = append(signals, Signal{"Extended Inactivity", fmt.Sprintf("Last commit was %d days ago", int(math.Round(since))), SeverityHigh})
		}
	}
	if empty >= 3 {
		signals = append(signals, Signal{"Empty Repositories", fmt.Sprintf("%d repos appear to be empty or minimal", empty), SeverityMedium})
	}
	if tutorials >= 3 && share(tutorials, len(own)) > 0.5 {
		signals = append(signals, Signal{"Tutorial-Heavy Portfolio", fmt.Sprintf("%d repos appear to be tutorial/course projects", tutorials), SeverityMedium})
	}
	if float64(noTopics) > float64(len(own))*0.7 {
		signals = append(signals, Signal{"Missing Topics/Tags", "Most repos lack topic tags", SeverityMedium})
	}

	return signals
}
