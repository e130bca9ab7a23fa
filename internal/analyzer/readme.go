// Package analyzer grades the content samples of top repositories: README
// text, file-tree layout and commit messages.
package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// ReadmeAnalysis captures the quality assessment of a single README.
type ReadmeAnalysis struct {
	// Score is the weighted combination of the three sub-scores (0-100).
	Score int `json:"score"`

	// StructuralScore rates headings, code samples, length and visuals.
	StructuralScore int `json:"structural_score"`

	// ProfessionalScore rates badges, licensing, contribution and setup docs.
	ProfessionalScore int `json:"professional_score"`

	// StorytellingScore rates usage, architecture, demos and impact framing.
	StorytellingScore int `json:"storytelling_score"`

	HasH1             bool `json:"has_h1"`
	HasTOC            bool `json:"has_toc"`
	HasInstallation   bool `json:"has_installation"`
	HasUsage          bool `json:"has_usage"`
	HasArchitecture   bool `json:"has_architecture"`
	HasScreenshots    bool `json:"has_screenshots"`
	HasBadges         bool `json:"has_badges"`
	HasContributing   bool `json:"has_contributing"`
	HasLicense        bool `json:"has_license"`
	HasDemoLink       bool `json:"has_demo_link"`
	HasAPIDocs        bool `json:"has_api_docs"`
	HasImpactKeywords bool `json:"has_impact_keywords"`

	WordCount      int `json:"word_count"`
	HeadingCount   int `json:"heading_count"`
	CodeBlockCount int `json:"code_block_count"`

	// Missing lists the checklist items that are absent, in fixed order.
	Missing []string `json:"missing"`
}

// RepoReadme pairs a README analysis with the repository it came from.
type RepoReadme struct {
	RepoName string         `json:"repo_name"`
	Analysis ReadmeAnalysis `json:"analysis"`
}

// readmeDetector is one checklist item: it is present when any pattern
// matches the raw text or any phrase occurs in the lower-cased text.
type readmeDetector struct {
	patterns []*regexp.Regexp
	phrases  []string
}

func (d readmeDetector) detect(content, lower string) bool {
	for _, re := range d.patterns {
		if re.MatchString(content) {
			return true
		}
	}
	for _, p := range d.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

var (
	detectH1 = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?m)^#\s+.+`),
	}}
	detectTOCHeading = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)#{1,3}\s*(table of contents|contents|toc)`),
	}}
	detectInstallation = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)#{1,3}\s*(install|setup|getting started|quick start)`),
		regexp.MustCompile(`(?i)(npm install|pip install|yarn add|docker build|brew install|cargo install|go get)`),
	}}
	detectUsage = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)#{1,3}\s*(usage|how to use|examples?|demo|run)`),
		regexp.MustCompile(`(?i)(npm run|python |node |cargo run|go run)`),
	}}
	detectArchitecture = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)#{1,3}\s*(architect|design|structure|overview|how it works|system design|diagram)`),
	}}
	detectScreenshots = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`!\[.*\]\(.*\)`),
		regexp.MustCompile(`(?i)<img\s`),
	}}
	detectBadges = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`\[!\[.*\]\(https?://.*\)\]\(.*\)`),
		regexp.MustCompile(`img\.shields\.io`),
		regexp.MustCompile(`(?i)badge`),
	}}
	detectContributing = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)#{1,3}\s*(contribut|pull request)`),
		regexp.MustCompile(`(?i)CONTRIBUTING\.md`),
	}}
	detectLicense = readmeDetector{
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)#{1,3}\s*license`)},
		phrases:  []string{"mit license", "apache license", "gpl"},
	}
	detectDemoLink = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)(live demo|deployed|https?://.*\.(vercel|netlify|herokuapp|github\.io|surge\.sh|render\.com|fly\.dev))`),
	}}
	detectAPIDocs = readmeDetector{patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)#{1,3}\s*(api|endpoint|route)`),
	}}
	detectImpact = readmeDetector{phrases: []string{
		"users", "performance", "scalable", "deployed", "production", "million",
		"thousand", "enterprise", "revenue", "traffic", "uptime", "latency", "concurrent",
	}}
	detectProblemFraming = readmeDetector{
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)#{1,3}\s*(problem|motivation|why|background|goal|objective)`)},
		phrases:  []string{"this project", "solves", "built to"},
	}

	tocLinkPattern = regexp.MustCompile(`\n\s*-\s*\[.*\]\(#.*\)`)
	headingLine    = regexp.MustCompile(`^#{1,6}\s`)
)

// AnalyzeReadme scores one README's raw markdown text.
func AnalyzeReadme(content string) ReadmeAnalysis {
	lower := strings.ToLower(content)

	a := ReadmeAnalysis{
		HasH1:             detectH1.detect(content, lower),
		HasTOC:            detectTOCHeading.detect(content, lower) || len(tocLinkPattern.FindAllString(content, -1)) >= 3,
		HasInstallation:   detectInstallation.detect(content, lower),
		HasUsage:          detectUsage.detect(content, lower),
		HasArchitecture:   detectArchitecture.detect(content, lower),
		HasScreenshots:    detectScreenshots.detect(content, lower),
		HasBadges:         detectBadges.detect(content, lower),
		HasContributing:   detectContributing.detect(content, lower),
		HasLicense:        detectLicense.detect(content, lower),
		HasDemoLink:       detectDemoLink.detect(content, lower),
		HasAPIDocs:        detectAPIDocs.detect(content, lower),
		HasImpactKeywords: detectImpact.detect(content, lower),
		WordCount:         len(strings.Fields(content)),
		CodeBlockCount:    strings.Count(content, "```") / 2,
	}
	for _, line := range strings.Split(content, "\n") {
		if headingLine.MatchString(line) {
			a.HeadingCount++
		}
	}

	a.StructuralScore = structuralScore(a)
	a.ProfessionalScore = professionalScore(a)
	a.StorytellingScore = storytellingScore(a, detectProblemFraming.detect(content, lower))

	weighted := float64(a.StructuralScore)*0.35 + float64(a.ProfessionalScore)*0.35 + float64(a.StorytellingScore)*0.30
	a.Score = min(100, int(math.Round(weighted)))
	a.Missing = readmeMissing(a)

	return a
}

// AnalyzeReadmes analyzes every README sample, preserving input order.
func AnalyzeReadmes(samples []profile.ReadmeSample) []RepoReadme {
	out := make([]RepoReadme, 0, len(samples))
	for _, s := range samples {
		out = append(out, RepoReadme{RepoName: s.RepoName, Analysis: AnalyzeReadme(s.Content)})
	}
	return out
}

// MeanReadmeScore returns the average README score, or 0 with no samples.
func MeanReadmeScore(readmes []RepoReadme) float64 {
	if len(readmes) == 0 {
		return 0
	}
	total := 0
	for _, r := range readmes {
		total += r.Analysis.Score
	}
	return float64(total) / float64(len(readmes))
}

func structuralScore(a ReadmeAnalysis) int {
	score := 0
	if a.HasH1 {
		score += 20
	}
	if a.HasTOC {
		score += 15
	}
	switch {
	case a.HeadingCount >= 4:
		score += 20
	case a.HeadingCount >= 2:
		score += 10
	}
	switch {
	case a.CodeBlockCount >= 2:
		score += 15
	case a.CodeBlockCount >= 1:
		score += 8
	}
	switch {
	case a.WordCount >= 500:
		score += 20
	case a.WordCount >= 300:
		score += 15
	case a.WordCount >= 100:
		score += 10
	case a.WordCount >= 50:
		score += 5
	}
	if a.HasScreenshots {
		score += 10
	}
	return min(100, score)
}

func professionalScore(a ReadmeAnalysis) int {
	score := 0
	if a.HasBadges {
		score += 20
	}
	if a.HasLicense {
		score += 15
	}
	if a.HasContributing {
		score += 15
	}
	if a.HasInstallation {
		score += 20
	}
	if a.HasAPIDocs {
		score += 15
	}
	if a.HasDemoLink {
		score += 15
	}
	return min(100, score)
}

func storytellingScore(a ReadmeAnalysis, problemFraming bool) int {
	score := 0
	if a.HasUsage {
		score += 20
	}
	if a.HasArchitecture {
		score += 20
	}
	if a.HasScreenshots {
		score += 15
	}
	if a.HasDemoLink {
		score += 15
	}
	if a.HasImpactKeywords {
		score += 15
	}
	if problemFraming {
		score += 15
	}
	return min(100, score)
}

// readmeMissing lists absent checklist items. The table of contents and API
// docs are only expected once a README exceeds 200 words.
func readmeMissing(a ReadmeAnalysis) []string {
	long := a.WordCount > 200
	checks := []struct {
		present bool
		label   string
	}{
		{a.HasH1, "H1 title"},
		{a.HasTOC || !long, "Table of Contents"},
		{a.HasInstallation, "Installation instructions"},
		{a.HasUsage, "Usage examples"},
		{a.HasArchitecture, "Architecture diagram"},
		{a.HasScreenshots, "Screenshots or visuals"},
		{a.HasDemoLink, "Live demo link"},
		{a.HasContributing, "Contributing guide"},
		{a.HasBadges, "Status badges"},
		{a.HasAPIDocs || !long, "API documentation"},
		{a.HasImpactKeywords, "Impact/scale metrics"},
	}

	missing := []string{}
	for _, c := range checks {
		if !c.present {
			missing = append(missing, c.label)
		}
	}
	return missing
}
