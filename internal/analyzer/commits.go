package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

// CommitQuality captures how well a developer writes commit messages across
// all sampled repositories.
type CommitQuality struct {
	// Score is the sum of four 25-point bands (0-100).
	Score int `json:"score"`

	// AvgLength is the rounded mean length of commit subject lines, in
	// characters.
	AvgLength int `json:"avg_length"`

	// GenericPercent is the share of throwaway messages like "fix" or "wip".
	GenericPercent int `json:"generic_percent"`

	// ConventionalPercent is the share following the conventional-commit format.
	ConventionalPercent int `json:"conventional_percent"`

	// DescriptivePercent is the share opening with an action verb.
	DescriptivePercent int `json:"descriptive_percent"`

	Concerns      []string `json:"concerns"`
	TotalAnalyzed int      `json:"total_analyzed"`
}

var (
	genericMessage      = regexp.MustCompile(`(?i)^(update|fix|wip|test|minor|changes|stuff|\.+|initial commit|first commit|typo|misc|temp|asdf|commit|save|push|add files|upload|edit|modified)$`)
	conventionalMessage = regexp.MustCompile(`^(feat|fix|chore|docs|style|refactor|perf|test|build|ci|revert)(\(.+\))?:\s`)
	descriptiveMessage  = regexp.MustCompile(`(?i)^(add|create|implement|refactor|remove|update|fix|improve|optimize|migrate|integrate|configure|handle|resolve|extract|enable|disable)`)
)

// AnalyzeCommitMessages pools every sampled commit and grades the subject
// lines. Only the first line of each message is considered.
func AnalyzeCommitMessages(samples []profile.CommitSample) CommitQuality {
	var subjects []string
	for _, s := range samples {
		for _, m := range s.Messages {
			subject, _, _ := strings.Cut(m.Message, "\n")
			subjects = append(subjects, strings.TrimSpace(subject))
		}
	}

	if len(subjects) == 0 {
		return CommitQuality{Concerns: []string{"No commit data available"}}
	}

	var totalLen, generic, conventional, descriptive int
	for _, s := range subjects {
		n := utf8.RuneCountInString(s)
		totalLen += n
		if n <= 3 || genericMessage.MatchString(s) {
			generic++
		}
		if conventionalMessage.MatchString(s) {
			conventional++
		}
		if n >= 10 && descriptiveMessage.MatchString(s) {
			descriptive++
		}
	}

	total := float64(len(subjects))
	q := CommitQuality{
		AvgLength:           int(math.Round(float64(totalLen) / total)),
		GenericPercent:      int(math.Round(float64(generic) / total * 100)),
		ConventionalPercent: int(math.Round(float64(conventional) / total * 100)),
		DescriptivePercent:  int(math.Round(float64(descriptive) / total * 100)),
		TotalAnalyzed:       len(subjects),
	}

	// Message length.
	switch {
	case q.AvgLength >= 30:
		q.Score += 25
	case q.AvgLength >= 15:
		q.Score += 15
	default:
		q.Score += 5
	}

	// Few generic messages.
	switch {
	case q.GenericPercent <= 10:
		q.Score += 25
	case q.GenericPercent <= 30:
		q.Score += 15
	case q.GenericPercent <= 50:
		q.Score += 5
	}

	// Action verbs.
	switch {
	case q.DescriptivePercent >= 50:
		q.Score += 25
	case q.DescriptivePercent >= 25:
		q.Score += 15
	default:
		q.Score += 5
	}

	// Conventional commits.
	switch {
	case q.ConventionalPercent >= 30:
		q.Score += 25
	case q.ConventionalPercent >= 10:
		q.Score += 15
	default:
		q.Score += 5
	}

	q.Concerns = []string{}
	if q.GenericPercent > 40 {
		q.Concerns = append(q.Concerns, fmt.Sprintf("%d%% of commits have generic messages", q.GenericPercent))
	}
	if q.AvgLength < 15 {
		q.Concerns = append(q.Concerns, fmt.Sprintf("Average message length is only %d chars", q.AvgLength))
	}
	if q.ConventionalPercent == 0 {
		q.Concerns = append(q.Concerns, "No conventional commit format used")
	}
	if q.DescriptivePercent < 20 {
		q.Concerns = append(q.Concerns, "Few commits use descriptive action verbs")
	}

	return q
}
