package profile

import (
	"sort"
	"strings"
	"time"
)

// OwnRepos returns the repositories that are not forks, preserving order.
func OwnRepos(repos []Repository) []Repository {
	own := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			own = append(own, r)
		}
	}
	return own
}

// ForkCount returns the number of forked repositories.
func ForkCount(repos []Repository) int {
	n := 0
	for _, r := range repos {
		if r.Fork {
			n++
		}
	}
	return n
}

// EventsOfType returns the events whose type matches eventType, preserving order.
func EventsOfType(events []ActivityEvent, eventType string) []ActivityEvent {
	var out []ActivityEvent
	for _, e := range events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// CountEvents returns the number of events of the given type.
func CountEvents(events []ActivityEvent, eventType string) int {
	n := 0
	for _, e := range events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// LatestEvent returns the most recent event of the given type. The second
// return value is false when no such event exists.
func LatestEvent(events []ActivityEvent, eventType string) (ActivityEvent, bool) {
	var latest ActivityEvent
	found := false
	for _, e := range events {
		if e.Type != eventType {
			continue
		}
		if !found || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
			found = true
		}
	}
	return latest, found
}

// DaysSince returns the fractional number of days between t and now.
func DaysSince(t, now time.Time) float64 {
	return now.Sub(t).Hours() / 24
}

// TotalStars sums stargazers across repos.
func TotalStars(repos []Repository) int {
	n := 0
	for _, r := range repos {
		n += r.Stars
	}
	return n
}

// TotalForks sums fork counts across repos.
func TotalForks(repos []Repository) int {
	n := 0
	for _, r := range repos {
		n += r.Forks
	}
	return n
}

// Languages returns the distinct non-empty primary languages of repos.
func Languages(repos []Repository) map[string]bool {
	langs := make(map[string]bool)
	for _, r := range repos {
		if r.Language != "" {
			langs[r.Language] = true
		}
	}
	return langs
}

// SearchText returns the lower-cased description followed by the
// space-joined topics, optionally prefixed or suffixed with the name.
func SearchText(r Repository, withName bool) string {
	text := r.Description + " " + strings.Join(r.Topics, " ")
	if withName {
		text += " " + r.Name
	}
	return strings.ToLower(text)
}

// ContainsAny reports whether text contains any of the keywords.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// TopByStars returns up to n own repositories ordered by star count
// descending. Ties keep their input order.
func TopByStars(repos []Repository, n int) []Repository {
	own := OwnRepos(repos)
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Stars > own[j].Stars
	})
	if n >= 0 && len(own) > n {
		own = own[:n]
	}
	return own
}
