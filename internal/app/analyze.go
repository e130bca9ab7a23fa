package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/hiresignal/internal/config"
	"github.com/blackwell-systems/hiresignal/internal/github"
	"github.com/blackwell-systems/hiresignal/internal/logger"
	"github.com/blackwell-systems/hiresignal/internal/metrics"
	"github.com/blackwell-systems/hiresignal/internal/profile"
	"github.com/blackwell-systems/hiresignal/internal/report"
	"github.com/blackwell-systems/hiresignal/internal/store"
)

var (
	analyzeInput    string
	analyzeNow      string
	analyzeSave     bool
	analyzeTextfile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [login]",
	Short: "Fetch a GitHub profile and print its hiring-signal report",
	Long: `Fetch the public profile, repositories and recent activity of a GitHub
user, sample READMEs, file trees and commit messages from the top
repositories, and print the full hiring-signal report.

With --input the report is computed offline from a snapshot written by
'hiresignal fetch'. --now pins the reference time so that reports of the
same snapshot are reproducible.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Analyze a saved input snapshot (.json, .yaml) instead of fetching")
	analyzeCmd.Flags().StringVar(&analyzeNow, "now", "", "Reference time in RFC3339 (default: current time)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the report to the local database")
	analyzeCmd.Flags().StringVar(&analyzeTextfile, "textfile", "", "Write Prometheus gauges to this file (default: metrics.textfile)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	now, err := parseNow(analyzeNow)
	if err != nil {
		return err
	}

	in, err := loadInput(cmd.Context(), e, args, analyzeInput)
	if err != nil {
		return err
	}

	r := report.Analyze(*in, now)
	log := logger.WithLogin(e.log, r.Login)
	log.Debug("report computed", zap.Int("overall", r.OverallScore))

	if analyzeSave {
		id, err := saveReport(e.cfg.DBPath, r)
		if err != nil {
			return err
		}
		log.Info("report saved", zap.Int64("snapshot", id))
	}

	if err := exportMetrics(log, textfilePath(analyzeTextfile, e.cfg), r); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, r)
	}
	renderReport(out, r, e.cfg.Output.Width)
	return nil
}

// parseNow parses an RFC3339 reference time; empty means the current time.
func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --now: %w", err)
	}
	return t, nil
}

// loadInput reads the snapshot at path when given, and otherwise fetches the
// login named in args from GitHub.
func loadInput(ctx context.Context, e *env, args []string, path string) (*profile.Input, error) {
	if path != "" {
		in, err := profile.LoadInput(path)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 && args[0] != in.Profile.Login {
			e.log.Warn("login argument ignored for snapshot input",
				zap.String("argument", args[0]), zap.String(logger.FieldLogin, in.Profile.Login))
		}
		return in, nil
	}

	if len(args) == 0 {
		return nil, errors.New("a GitHub login is required unless --input is given")
	}
	return fetchProfile(ctx, e, args[0])
}

func fetchProfile(ctx context.Context, e *env, login string) (*profile.Input, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := newGitHubClient(e)
	if err != nil {
		return nil, err
	}

	log := logger.WithLogin(e.log, login)
	in, err := client.Fetch(ctx, login, logger.Progress(log))
	if err != nil {
		switch {
		case errors.Is(err, github.ErrUserNotFound):
			return nil, fmt.Errorf("GitHub user %q not found", login)
		case github.IsRateLimitError(err):
			wait := github.GetRetryAfter(err, time.Now())
			return nil, fmt.Errorf("GitHub rate limit exceeded, retry in %s (set github.token to raise the limit): %w",
				wait.Round(time.Second), err)
		}
		return nil, err
	}
	return in, nil
}

func newGitHubClient(e *env) (*github.Client, error) {
	return github.NewClient(github.Options{
		Token:          e.cfg.GitHub.Token,
		BaseURL:        e.cfg.GitHub.BaseURL,
		MaxRepoPages:   e.cfg.GitHub.MaxRepoPages,
		Readmes:        e.cfg.Sample.Readmes,
		Trees:          e.cfg.Sample.Trees,
		CommitsPerRepo: e.cfg.Sample.CommitsPerRepo,
	}, e.log)
}

// saveReport persists r with its metrics and recommendations, resolving
// recommendations from earlier snapshots that no longer apply.
func saveReport(dbPath string, r *report.Report) (int64, error) {
	db, err := store.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return persistReport(db, r)
}

func persistReport(db *store.DB, r *report.Report) (int64, error) {
	doc, err := json.Marshal(r)
	if err != nil {
		return 0, fmt.Errorf("encoding report: %w", err)
	}

	recs := make([]store.Recommendation, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		recs = append(recs, store.Recommendation{
			Category:      rec.Category,
			Impact:        rec.Impact,
			Title:         rec.Title,
			Description:   rec.Description,
			ScoreIncrease: rec.ScoreIncrease,
		})
	}

	id, _, err := db.RecordSnapshot(store.Snapshot{
		Login:        r.Login,
		TakenAt:      r.GeneratedAt,
		Version:      appVersion,
		OverallScore: r.OverallScore,
	}, doc, reportMetrics(r), recs)
	if err != nil {
		return 0, fmt.Errorf("recording snapshot: %w", err)
	}
	return id, nil
}

func textfilePath(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Metrics.Textfile
}

// exportMetrics writes r as Prometheus gauges to path. An empty path is a
// no-op.
func exportMetrics(log *zap.Logger, path string, reports ...*report.Report) error {
	if path == "" {
		return nil
	}
	c := metrics.NewCollector()
	for _, r := range reports {
		c.Update(r)
	}
	if err := c.WriteTextfile(path); err != nil {
		return err
	}
	log.Info("metrics written", zap.String("path", path), zap.Int("reports", len(reports)))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
