// Package lens scores a profile the way three recruiter personas would and
// measures readiness against fixed career paths.
package lens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/profile"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
)

// Kind identifies a recruiter persona.
type Kind string

const (
	Startup    Kind = "startup"
	Enterprise Kind = "enterprise"
	AIML       Kind = "aiml"
)

// Kinds lists every lens in report order.
var Kinds = []Kind{Startup, Enterprise, AIML}

// Result is one persona's verdict on the profile.
type Result struct {
	Lens       Kind     `json:"lens"`
	Label      string   `json:"label"`
	Score      int      `json:"score"`
	Highlights []string `json:"highlights"`
	Concerns   []string `json:"concerns"`
	Verdict    string   `json:"verdict"`
}

// evidence is the raw data every lens reads. Lenses never see each other's
// results.
type evidence struct {
	own       []profile.Repository
	events    []profile.ActivityEvent
	avgReadme float64
}

// card accumulates points, highlights and concerns in grant order.
type card struct {
	score      float64
	highlights []string
	concerns   []string
}

func (c *card) award(points float64, highlight string) {
	c.score += points
	if highlight != "" {
		c.highlights = append(c.highlights, highlight)
	}
}

func (c *card) concern(text string) {
	c.concerns = append(c.concerns, text)
}

// verdicts holds the three banded sentence templates of a lens. The strong
// template takes the first highlight, the moderate one the first concern and
// the weak one the first two concerns.
type verdicts struct {
	strong           string
	moderate         string
	moderateFallback string
	weak             string
}

type rubric struct {
	label    string
	evaluate func(ev evidence, c *card)
	verdicts verdicts
}

var rubrics = map[Kind]rubric{
	Startup: {
		label:    "Startup Recruiter",
		evaluate: evaluateStartup,
		verdicts: verdicts{
			strong:           "Strong shipping velocity and product awareness.%s Would advance to technical interview.",
			moderate:         "Moderate potential: shows initiative but lacks %s. Would request live demo before moving forward.",
			moderateFallback: "deployed demos",
			weak:             "Insufficient shipping signals.%s Needs portfolio polish before startup readiness.",
		},
	},
	Enterprise: {
		label:    "Enterprise Recruiter",
		evaluate: evaluateEnterprise,
		verdicts: verdicts{
			strong:           "Strong engineering discipline with documented practices.%s Fits enterprise standards.",
			moderate:         "Some structure present but %s. Risk for large-scale systems without more maturity signals.",
			moderateFallback: "gaps in test coverage",
			weak:             "Insufficient test coverage and documentation signals.%s Not enterprise-ready yet.",
		},
	},
	AIML: {
		label:    "AI/ML Recruiter",
		evaluate: evaluateAIML,
		verdicts: verdicts{
			strong:           "Clear ML/AI specialization with research depth.%s Strong candidate for technical roles.",
			moderate:         "Some AI/ML exposure but %s. Would probe for deeper ML system design knowledge.",
			moderateFallback: "lacks experiment tracking",
			weak:             "No significant ML/AI portfolio signals.%s Needs dedicated ML projects to be competitive.",
		},
	},
}

// Evaluate runs every lens over the same raw data.
func Evaluate(in profile.Input, readmes []analyzer.RepoReadme) []Result {
	results := make([]Result, 0, len(Kinds))
	for _, k := range Kinds {
		results = append(results, EvaluateLens(k, in, readmes))
	}
	return results
}

// EvaluateLens runs a single lens. An unknown kind yields a zero Result
// carrying only the kind.
func EvaluateLens(kind Kind, in profile.Input, readmes []analyzer.RepoReadme) Result {
	r, ok := rubrics[kind]
	if !ok {
		return Result{Lens: kind, Highlights: []string{}, Concerns: []string{}}
	}

	ev := evidence{
		own:       profile.OwnRepos(in.Repositories),
		events:    in.Events,
		avgReadme: analyzer.MeanReadmeScore(readmes),
	}
	c := &card{highlights: []string{}, concerns: []string{}}
	r.evaluate(ev, c)

	score := scoring.Clamp(c.score)
	return Result{
		Lens:       kind,
		Label:      r.label,
		Score:      score,
		Highlights: c.highlights,
		Concerns:   c.concerns,
		Verdict:    r.verdicts.render(score, c.highlights, c.concerns),
	}
}

func (v verdicts) render(score int, highlights, concerns []string) string {
	switch {
	case score >= 70:
		lead := ""
		if len(highlights) > 0 {
			lead = " " + highlights[0] + "."
		}
		return fmt.Sprintf(v.strong, lead)
	case score >= 45:
		gap := v.moderateFallback
		if len(concerns) > 0 {
			gap = strings.ToLower(concerns[0])
		}
		return fmt.Sprintf(v.moderate, gap)
	default:
		lowered := make([]string, 0, 2)
		for _, c := range concerns[:min(2, len(concerns))] {
			lowered = append(lowered, strings.ToLower(c))
		}
		detail := ""
		if len(lowered) > 0 {
			detail = " " + strings.Join(lowered, " and ") + "."
		}
		return fmt.Sprintf(v.weak, detail)
	}
}

func evaluateStartup(ev evidence, c *card) {
	switch pushes := profile.CountEvents(ev.events, profile.EventPush); {
	case pushes > 10:
		c.award(20, "High shipping velocity")
	case pushes > 3:
		c.award(10, "")
	default:
		c.concern("Low shipping frequency")
	}

	var deployed, described int
	for _, r := range ev.own {
		if r.HasHomepage() {
			deployed++
		}
		if r.DescriptionLen() > 20 {
			described++
		}
	}
	switch {
	case deployed >= 2:
		c.award(20, fmt.Sprintf("%d deployed projects", deployed))
	case deployed == 1:
		c.award(10, "")
	default:
		c.concern("No deployed projects found")
	}

	if float64(described) >= float64(len(ev.own))*0.6 {
		c.award(15, "Clear product descriptions")
	} else {
		c.concern("Most repos lack clear descriptions")
	}

	if langs := len(profile.Languages(ev.own)); langs >= 3 {
		c.award(15, fmt.Sprintf("%d technologies used", langs))
	} else {
		c.award(5, "")
	}

	switch stars := profile.TotalStars(ev.own); {
	case stars >= 20:
		c.award(15, fmt.Sprintf("%d community stars", stars))
	case stars >= 5:
		c.award(8, "")
	}

	switch {
	case ev.avgReadme >= 50:
		c.award(15, "Good documentation")
	case ev.avgReadme >= 25:
		c.award(8, "")
	default:
		c.concern("READMEs need improvement")
	}
}

func evaluateEnterprise(ev evidence, c *card) {
	var tested, licensed, organized int
	for _, r := range ev.own {
		desc := strings.ToLower(r.Description)
		topics := strings.ToLower(strings.Join(r.Topics, " "))
		if strings.Contains(desc, "test") || profile.ContainsAny(topics, []string{"test", "ci", "docker"}) {
			tested++
		}
		if r.HasLicense() {
			licensed++
		}
		if len(r.Topics) >= 2 {
			organized++
		}
	}

	if tested >= 2 {
		c.award(20, "Testing/CI signals detected")
	} else {
		c.concern("No testing or CI signals found")
	}

	switch {
	case ev.avgReadme >= 60:
		c.award(20, "Strong documentation practices")
	case ev.avgReadme >= 30:
		c.award(10, "")
	default:
		c.concern("Documentation needs significant improvement")
	}

	if float64(licensed) >= float64(len(ev.own))*0.5 {
		c.award(15, "Proper licensing practices")
	} else {
		c.concern("Most repos lack licenses")
	}

	if organized >= 3 {
		c.award(15, "Well-organized repositories")
	} else {
		c.award(5, "")
	}

	days := make(map[string]bool)
	for _, e := range profile.EventsOfType(ev.events, profile.EventPush) {
		days[e.Day()] = true
	}
	switch {
	case len(days) >= 10:
		c.award(15, "Consistent commit history")
	case len(days) >= 5:
		c.award(8, "")
	default:
		c.concern("Inconsistent activity pattern")
	}

	if profile.CountEvents(ev.events, profile.EventPullRequest) >= 3 {
		c.award(15, "Active PR participation")
	} else {
		c.concern("Limited PR/review activity")
	}
}

var (
	mlKeywords = []string{
		"machine learning", "deep learning", "neural", "tensorflow", "pytorch", "ml", "ai",
		"nlp", "computer vision", "data science", "model", "training", "dataset", "notebook",
	}
	researchKeywords = []string{"paper", "research", "experiment", "benchmark"}
)

func evaluateAIML(ev evidence, c *card) {
	var mlRepos, mlLangRepos, notebooks, research, mlStars int
	for _, r := range ev.own {
		if profile.ContainsAny(profile.SearchText(r, true), mlKeywords) {
			mlRepos++
			mlStars += r.Stars
		}
		switch r.Language {
		case "Python", "R", "Julia":
			mlLangRepos++
		}
		if strings.Contains(strings.ToLower(r.Name), "notebook") || slices.Contains(r.Topics, "jupyter") {
			notebooks++
		}
		if profile.ContainsAny(profile.SearchText(r, false), researchKeywords) {
			research++
		}
	}

	switch {
	case mlRepos >= 3:
		c.award(25, fmt.Sprintf("%d ML/AI repositories", mlRepos))
	case mlRepos >= 1:
		c.award(12, fmt.Sprintf("%d ML/AI repo(s) found", mlRepos))
	default:
		c.concern("No ML/AI projects detected")
	}

	switch {
	case mlLangRepos >= 2:
		c.award(20, "ML-focused language stack")
	case mlLangRepos >= 1:
		c.award(10, "")
	default:
		c.concern("No Python/R/Julia projects found")
	}

	if notebooks >= 1 {
		c.award(15, "Jupyter notebook projects")
	}

	if research >= 1 {
		c.award(15, "Research-oriented projects")
	} else {
		c.concern("No research or paper implementations")
	}

	if ev.avgReadme >= 50 {
		c.award(15, "Well-documented experiments")
	} else {
		c.concern("Experiment documentation lacking")
	}

	if mlStars >= 10 {
		c.award(10, fmt.Sprintf("%d stars on ML projects", mlStars))
	}
}
