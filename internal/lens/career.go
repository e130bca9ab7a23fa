package lens

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/profile"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
)

// Path identifies a career track.
type Path string

const (
	Frontend  Path = "frontend"
	Backend   Path = "backend"
	Fullstack Path = "fullstack"
	DevOps    Path = "devops"
	ML        Path = "ml"
)

// Paths lists every career path in evaluation order.
var Paths = []Path{Frontend, Backend, Fullstack, DevOps, ML}

// Alignment is the profile's readiness for one career path.
type Alignment struct {
	Path      Path     `json:"path"`
	Label     string   `json:"label"`
	Readiness int      `json:"readiness"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
	BestMatch bool     `json:"best_match"`
}

type pathConfig struct {
	label     string
	languages []string
	keywords  []string
}

var pathConfigs = map[Path]pathConfig{
	Frontend: {
		label:     "Frontend Developer",
		languages: []string{"JavaScript", "TypeScript", "CSS", "HTML"},
		keywords:  []string{"react", "vue", "angular", "svelte", "next", "nuxt", "tailwind", "frontend", "ui", "ux", "component", "web app"},
	},
	Backend: {
		label:     "Backend Developer",
		languages: []string{"Python", "Java", "Go", "Rust", "C#", "Ruby", "TypeScript", "PHP"},
		keywords:  []string{"api", "server", "database", "rest", "graphql", "microservice", "backend", "auth", "middleware", "queue"},
	},
	Fullstack: {
		label:     "Full-Stack Developer",
		languages: []string{"JavaScript", "TypeScript", "Python", "Java", "Go"},
		keywords:  []string{"fullstack", "full-stack", "webapp", "saas", "mern", "mean", "next", "nuxt", "deployment"},
	},
	DevOps: {
		label:     "DevOps Engineer",
		languages: []string{"Python", "Go", "Shell", "HCL", "TypeScript"},
		keywords:  []string{"docker", "kubernetes", "ci", "cd", "terraform", "ansible", "devops", "infrastructure", "pipeline", "monitoring", "deploy"},
	},
	ML: {
		label:     "ML Engineer",
		languages: []string{"Python", "R", "Julia", "C++"},
		keywords:  []string{"machine learning", "deep learning", "neural", "tensorflow", "pytorch", "ml", "ai", "data", "model", "training", "nlp"},
	},
}

// AlignCareers scores every career path and returns them ordered by
// readiness, highest first. Ties keep path order. Only the first entry is
// flagged as the best match.
func AlignCareers(repos []profile.Repository) []Alignment {
	out := make([]Alignment, 0, len(Paths))
	for _, p := range Paths {
		out = append(out, Align(p, repos))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Readiness > out[j].Readiness
	})
	if len(out) > 0 {
		out[0].BestMatch = true
	}
	return out
}

// Align scores the original repositories against a single career path.
func Align(path Path, repos []profile.Repository) Alignment {
	cfg := pathConfigs[path]
	own := profile.OwnRepos(repos)
	a := Alignment{Path: path, Label: cfg.label, Strengths: []string{}, Gaps: []string{}}
	score := 0.0

	langMatches := 0
	var matched []profile.Repository
	for _, r := range own {
		if slices.Contains(cfg.languages, r.Language) {
			langMatches++
		}
		if profile.ContainsAny(profile.SearchText(r, true), cfg.keywords) {
			matched = append(matched, r)
		}
	}

	ratio := 0.0
	if len(own) > 0 {
		ratio = float64(langMatches) / float64(len(own))
	}
	switch {
	case ratio >= 0.5:
		score += 30
		a.Strengths = append(a.Strengths, fmt.Sprintf("Strong %s usage", strings.Join(head(cfg.languages, 3), "/")))
	case ratio >= 0.2:
		score += 15
	default:
		a.Gaps = append(a.Gaps, fmt.Sprintf("Limited %s projects", strings.Join(head(cfg.languages, 2), "/")))
	}

	switch n := len(matched); {
	case n >= 3:
		score += 30
		a.Strengths = append(a.Strengths, fmt.Sprintf("%d relevant projects", n))
	case n >= 1:
		score += 15
		a.Strengths = append(a.Strengths, fmt.Sprintf("%d relevant project(s)", n))
	default:
		a.Gaps = append(a.Gaps, fmt.Sprintf("No %s-specific projects", strings.ToLower(cfg.label)))
	}

	switch stars := profile.TotalStars(matched); {
	case stars >= 10:
		score += 15
		a.Strengths = append(a.Strengths, "Community-validated work")
	case stars >= 3:
		score += 8
	default:
		a.Gaps = append(a.Gaps, "Need more community validation")
	}

	if len(profile.Languages(matched)) >= 2 {
		score += 10
		a.Strengths = append(a.Strengths, "Multi-tool approach")
	}

	deployed := false
	for _, r := range matched {
		if r.HasHomepage() {
			deployed = true
			break
		}
	}
	if deployed {
		score += 15
		a.Strengths = append(a.Strengths, "Deployed/live projects")
	} else {
		a.Gaps = append(a.Gaps, "No deployed projects in this domain")
	}

	a.Readiness = scoring.Clamp(score)
	return a
}

func head(s []string, n int) []string {
	return s[:min(n, len(s))]
}
