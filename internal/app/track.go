package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/hiresignal/internal/logger"
	"github.com/blackwell-systems/hiresignal/internal/report"
	"github.com/blackwell-systems/hiresignal/internal/scoring"
	"github.com/blackwell-systems/hiresignal/internal/store"
)

var (
	trackCompare int
	trackHistory int
	trackInput   string
	trackNow     string
)

var trackCmd = &cobra.Command{
	Use:   "track <login>",
	Short: "Snapshot a profile's report and compare it over time",
	Long: `Analyze a profile, store a new snapshot, and compare its scores against
the previous snapshot of the same login with trend arrows. Recommendations
from earlier snapshots that no longer apply are marked resolved.

With --history N, show the score timeline of the N most recent snapshots
instead of taking a new one.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show score trends across N most recent snapshots")
	trackCmd.Flags().StringVar(&trackInput, "input", "", "Analyze a saved input snapshot instead of fetching")
	trackCmd.Flags().StringVar(&trackNow, "now", "", "Reference time in RFC3339 (default: current time)")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	if trackCompare < 1 {
		return fmt.Errorf("--compare must be at least 1, got %d", trackCompare)
	}
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	login := args[0]
	db, err := store.Open(e.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	if trackHistory > 0 {
		timeline, err := loadHistory(db, login, trackHistory)
		if err != nil {
			return err
		}
		if flagJSON {
			return writeJSON(out, map[string]any{"login": login, "history": timeline})
		}
		renderHistory(out, login, timeline, e.cfg.Output.Width)
		return nil
	}

	now, err := parseNow(trackNow)
	if err != nil {
		return err
	}
	in, err := loadInput(cmd.Context(), e, args, trackInput)
	if err != nil {
		return err
	}
	r := report.Analyze(*in, now)

	id, err := persistReport(db, r)
	if err != nil {
		return err
	}
	logger.WithLogin(e.log, r.Login).Info("snapshot recorded", zap.Int64("snapshot", id))

	current, err := db.GetSnapshot(id)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	// trackCompare=1 means the immediate predecessor, offset 2 from newest.
	prev, err := db.GetSnapshotN(r.Login, trackCompare+1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	var diff *store.SnapshotDiff
	if prev != nil {
		diff, err = db.Compare(prev, current)
		if err != nil {
			return fmt.Errorf("comparing snapshots: %w", err)
		}
	}

	if err := exportMetrics(e.log, e.cfg.Metrics.Textfile, r); err != nil {
		return err
	}

	if flagJSON {
		result := map[string]any{"snapshot": current}
		if diff != nil {
			result["diff"] = diff
		}
		return writeJSON(out, result)
	}
	renderDiff(out, current, diff, e.cfg.Output.Width)
	return nil
}

// reportMetrics flattens the numeric scores of a report in display order.
func reportMetrics(r *report.Report) []store.Metric {
	m := []store.Metric{{Name: "overall", Value: float64(r.OverallScore)}}
	for _, d := range scoring.Dimensions {
		m = append(m, store.Metric{Name: string(d), Value: float64(r.Scores.Get(d))})
	}
	for _, l := range r.Lenses {
		m = append(m, store.Metric{Name: "lens_" + string(l.Lens), Value: float64(l.Score)})
	}
	for _, a := range r.CareerAlignments {
		m = append(m, store.Metric{Name: "career_" + string(a.Path), Value: float64(a.Readiness)})
	}
	return append(m,
		store.Metric{Name: "signal_confidence", Value: float64(r.Confidence.Score)},
		store.Metric{Name: "discoverability", Value: float64(r.Discoverability.Score)},
		store.Metric{Name: "quick_scan", Value: float64(r.FirstImpression.QuickScanScore)},
		store.Metric{Name: "commit_quality", Value: float64(r.CommitQuality.Score)},
	)
}

// metricLabel returns a display label for a stored metric name.
func metricLabel(name string) string {
	switch {
	case name == "overall":
		return "Overall"
	case strings.HasPrefix(name, "lens_"):
		return "Lens: " + strings.TrimPrefix(name, "lens_")
	case strings.HasPrefix(name, "career_"):
		return "Career: " + strings.TrimPrefix(name, "career_")
	}
	return scoring.Dimension(name).Label()
}

// historyEntry is one snapshot with its metrics.
type historyEntry struct {
	Snapshot store.Snapshot `json:"snapshot"`
	Metrics  []store.Metric `json:"metrics"`
}

func (h historyEntry) order() []string {
	names := make([]string, len(h.Metrics))
	for i, m := range h.Metrics {
		names[i] = m.Name
	}
	return names
}

func (h historyEntry) value(name string) float64 {
	for _, m := range h.Metrics {
		if m.Name == name {
			return m.Value
		}
	}
	return 0
}

// loadHistory returns up to n snapshots for login, oldest first.
func loadHistory(db *store.DB, login string, n int) ([]historyEntry, error) {
	snapshots, err := db.GetRecentSnapshots(login, n)
	if err != nil {
		return nil, fmt.Errorf("loading snapshots: %w", err)
	}

	timeline := make([]historyEntry, 0, len(snapshots))
	for i := len(snapshots) - 1; i >= 0; i-- {
		s := snapshots[i]
		metrics, err := db.GetMetrics(s.ID)
		if err != nil {
			return nil, fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		timeline = append(timeline, historyEntry{Snapshot: s, Metrics: metrics})
	}
	return timeline, nil
}
