package app

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/blackwell-systems/hiresignal/internal/analyzer"
	"github.com/blackwell-systems/hiresignal/internal/output"
	"github.com/blackwell-systems/hiresignal/internal/report"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
	"github.com/blackwell-systems/hiresignal/internal/store"
	"github.com/blackwell-systems/hiresignal/internal/suggest"
)

const barWidth = 20

func ruleWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	return max(20, width-4)
}

// renderReport writes the full styled report.
func renderReport(w io.Writer, r *report.Report, width int) {
	rw := ruleWidth(width)

	fmt.Fprintln(w, output.Section("Hiring Signal: "+r.Login, rw))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %s  %s\n", output.StyleLabel.Render("Overall"), output.ScoreBar(r.OverallScore, barWidth),
		output.ScoreStyle(r.OverallScore).Render(r.Snapshot.HireLabel))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Signal confidence"),
		output.StyleMuted.Render(fmt.Sprintf("%d%% (%s)", r.Confidence.Score, r.Confidence.Label)))

	renderSnapshot(w, r.Snapshot, rw)

	fmt.Fprintln(w, output.Section("Dimension Scores", rw))
	fmt.Fprintln(w)
	for _, d := range scoring.Dimensions {
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(d.Label()), output.ScoreBar(r.Scores.Get(d), barWidth))
	}

	renderSignals(w, "Strengths", r.Strengths, true, rw)
	renderSignals(w, "Red Flags", r.RedFlags, false, rw)
	renderRecommendations(w, r.Recommendations, rw)
	renderSimulations(w, r.Simulations, rw)

	fmt.Fprintln(w, output.Section("Recruiter Lenses", rw))
	for _, l := range r.Lenses {
		fmt.Fprintln(w)
		fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render(l.Label), output.ScoreBar(l.Score, barWidth))
		fmt.Fprintf(w, "   %s\n", output.StyleMuted.Render(l.Verdict))
	}

	fmt.Fprintln(w, output.Section("Career Alignment", rw))
	fmt.Fprintln(w)
	tbl := output.NewTable("Path", "Readiness", "Strengths", "Gaps").AlignRight(1)
	for _, a := range r.CareerAlignments {
		label := a.Label
		if a.BestMatch {
			label = output.StyleSuccess.Render(label + " ★")
		}
		tbl.AddRow(label, fmt.Sprintf("%d%%", a.Readiness), strings.Join(a.Strengths, ", "), strings.Join(a.Gaps, ", "))
	}
	tbl.Fprint(w)

	renderPresence(w, r, rw)
	renderContent(w, r, rw)
	renderLanguages(w, r.LanguageDistribution, rw)
	fmt.Fprintln(w)
}

func renderSnapshot(w io.Writer, s report.Snapshot, rw int) {
	fmt.Fprintln(w, output.Section("Recruiter Snapshot", rw))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %d%%\n", output.StyleLabel.Render("Hire readiness"), s.HireReadiness)
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Biggest strength"), output.StyleSuccess.Render(s.BiggestStrength))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Biggest concern"), output.StyleError.Render(s.BiggestConcern))
	fix := s.TopFix
	if s.TopFixIncrease > 0 {
		fix = fmt.Sprintf("%s (+%d)", fix, s.TopFixIncrease)
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Top fix"), fix)
}

func renderSignals(w io.Writer, title string, signals []scoring.Signal, strengths bool, rw int) {
	fmt.Fprintln(w, output.Section(title, rw))
	fmt.Fprintln(w)
	if len(signals) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render("  none detected"))
		return
	}
	marker := output.StyleError.Render("✗")
	if strengths {
		marker = output.StyleSuccess.Render("✓")
	}
	for _, s := range signals {
		label := output.StyleBold.Render(s.Label)
		if !strengths {
			label = output.SeverityStyle(string(s.Severity)).Render(s.Label)
		}
		fmt.Fprintln(w, output.Bullet(marker, fmt.Sprintf("%s  %s", label, output.StyleMuted.Render(s.Description))))
	}
}

func renderRecommendations(w io.Writer, recs []suggest.Recommendation, rw int) {
	fmt.Fprintln(w, output.Section("Recommendations", rw))
	fmt.Fprintln(w)
	for i, rec := range recs {
		impact := output.SeverityStyle(rec.Impact).Render(strings.ToUpper(rec.Impact))
		fmt.Fprintf(w, "  %d. %s  %s  %s\n", i+1, output.StyleBold.Render(rec.Title), impact,
			output.StyleSuccess.Render(fmt.Sprintf("+%d", rec.ScoreIncrease)))
		fmt.Fprintf(w, "     %s\n", output.StyleMuted.Render(rec.Description))
	}
}

func renderSimulations(w io.Writer, scenarios []suggest.Scenario, rw int) {
	if len(scenarios) == 0 {
		return
	}
	fmt.Fprintln(w, output.Section("What If", rw))
	fmt.Fprintln(w)
	tbl := output.NewTable("Scenario", "Gain", "New Score").AlignRight(1, 2)
	for _, s := range scenarios {
		tbl.AddRow(s.Label, output.StyleSuccess.Render(fmt.Sprintf("+%d", s.ScoreIncrease)), fmt.Sprintf("%d", s.NewScore))
	}
	tbl.Fprint(w)
}

func renderPresence(w io.Writer, r *report.Report, rw int) {
	fmt.Fprintln(w, output.Section("Presence", rw))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Discoverability"), output.ScoreBar(r.Discoverability.Score, barWidth))
	for _, m := range r.Discoverability.Missing {
		fmt.Fprintln(w, output.Bullet(output.StyleWarning.Render("•"), m))
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("15-second scan"), output.ScoreBar(r.FirstImpression.QuickScanScore, barWidth))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Deep dive"), output.ScoreBar(r.FirstImpression.DeepDiveScore, barWidth))
	for _, f := range r.FirstImpression.QuickScanFactors {
		fmt.Fprintln(w, output.Bullet(output.StyleMuted.Render("•"), f))
	}
}

func renderContent(w io.Writer, r *report.Report, rw int) {
	fmt.Fprintln(w, output.Section("Content Quality", rw))
	fmt.Fprintln(w)

	if len(r.Readmes) > 0 {
		tbl := output.NewTable("Repository", "README", "Missing").AlignRight(1).Truncate(2, 48)
		for _, rr := range r.Readmes {
			tbl.AddRow(rr.RepoName, fmt.Sprintf("%d", rr.Analysis.Score), strings.Join(rr.Analysis.Missing, ", "))
		}
		tbl.Fprint(w)
		fmt.Fprintln(w)
	}

	if len(r.Structures) > 0 {
		tbl := output.NewTable("Repository", "Structure", "Missing").AlignRight(1).Truncate(2, 48)
		for _, s := range r.Structures {
			tbl.AddRow(s.RepoName, fmt.Sprintf("%d", s.Score), strings.Join(s.Missing, ", "))
		}
		tbl.Fprint(w)
		fmt.Fprintln(w)
	}

	renderCommitQuality(w, r.CommitQuality)
}

func renderCommitQuality(w io.Writer, c analyzer.CommitQuality) {
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Commit messages"), output.ScoreBar(c.Score, barWidth))
	if c.TotalAnalyzed > 0 {
		fmt.Fprintf(w, "   %s\n", output.StyleMuted.Render(fmt.Sprintf(
			"%d analyzed, avg %d chars, %d%% conventional, %d%% descriptive, %d%% generic",
			c.TotalAnalyzed, c.AvgLength, c.ConventionalPercent, c.DescriptivePercent, c.GenericPercent)))
	}
	for _, concern := range c.Concerns {
		fmt.Fprintln(w, output.Bullet(output.StyleWarning.Render("•"), concern))
	}
}

func renderLanguages(w io.Writer, dist map[string]int, rw int) {
	if len(dist) == 0 {
		return
	}
	type lang struct {
		name  string
		count int
	}
	langs := make([]lang, 0, len(dist))
	for name, count := range dist {
		langs = append(langs, lang{name, count})
	}
	slices.SortFunc(langs, func(a, b lang) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	fmt.Fprintln(w, output.Section("Languages", rw))
	fmt.Fprintln(w)
	tbl := output.NewTable("Language", "Repos").AlignRight(1)
	for _, l := range langs {
		tbl.AddRow(l.name, fmt.Sprintf("%d", l.count))
	}
	tbl.Fprint(w)
}

// renderDiff writes a snapshot comparison table.
func renderDiff(w io.Writer, current *store.Snapshot, diff *store.SnapshotDiff, width int) {
	rw := ruleWidth(width)
	fmt.Fprintln(w, output.Section("Track: "+current.Login, rw))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " Snapshot #%d taken at %s, overall %d\n\n",
		current.ID, current.TakenAt.Format("2006-01-02 15:04:05"), current.OverallScore)

	if diff == nil {
		fmt.Fprintf(w, " First snapshot recorded for %s. Run 'hiresignal track %s' again later to see trends.\n",
			current.Login, current.Login)
		return
	}

	fmt.Fprintf(w, " Comparing against snapshot #%d (%s)\n\n",
		diff.Previous.ID, diff.Previous.TakenAt.Format("2006-01-02 15:04:05"))

	tbl := output.NewTable("Metric", "Previous", "Current", "Trend").AlignRight(1, 2)
	for _, d := range diff.Deltas {
		tbl.AddRow(metricLabel(d.Name), fmt.Sprintf("%.0f", d.Previous), fmt.Sprintf("%.0f", d.Current), output.TrendArrow(d.Delta))
	}
	tbl.Fprint(w)
}

// renderHistory writes one column per snapshot, oldest first.
func renderHistory(w io.Writer, login string, timeline []historyEntry, width int) {
	rw := ruleWidth(width)
	fmt.Fprintln(w, output.Section("Track: "+login+" history", rw))
	fmt.Fprintln(w)

	if len(timeline) == 0 {
		fmt.Fprintf(w, " No snapshots found. Run 'hiresignal track %s' to create one.\n", login)
		return
	}
	fmt.Fprintf(w, " Showing %d most recent snapshots\n\n", len(timeline))

	headers := []string{"Metric"}
	for _, h := range timeline {
		headers = append(headers, fmt.Sprintf("#%d %s", h.Snapshot.ID, h.Snapshot.TakenAt.Format("Jan 02")))
	}
	headers = append(headers, "Trend")
	tbl := output.NewTable(headers...)
	for i := range timeline {
		tbl.AlignRight(i + 1)
	}

	for _, name := range timeline[len(timeline)-1].order() {
		row := []string{metricLabel(name)}
		var first, last float64
		for i, h := range timeline {
			v := h.value(name)
			if i == 0 {
				first = v
			}
			last = v
			row = append(row, fmt.Sprintf("%.0f", v))
		}
		trend := ""
		if len(timeline) >= 2 {
			trend = output.TrendArrow(last - first)
		}
		tbl.AddRow(append(row, trend)...)
	}
	tbl.Fprint(w)
}
