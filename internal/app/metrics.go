package app

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hiresignal/internal/report"
	"github.com/blackwell-systems/hiresignal/internal/store"
)

var metricsTextfile string

var metricsCmd = &cobra.Command{
	Use:   "metrics <login>...",
	Short: "Export the latest stored reports as Prometheus gauges",
	Long: `Load the most recent stored snapshot of each login and write their scores
as Prometheus gauges to a node-exporter textfile. The file is replaced
atomically, so a textfile collector never reads a partial write.

Snapshots are recorded by 'hiresignal track' or 'hiresignal analyze --save'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&metricsTextfile, "textfile", "", "Output file (default: metrics.textfile)")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	path := textfilePath(metricsTextfile, e.cfg)
	if path == "" {
		return errors.New("no textfile given: pass --textfile or set metrics.textfile")
	}

	db, err := store.Open(e.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	reports, err := latestReports(db, args)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return fmt.Errorf("no stored snapshots for %v", args)
	}

	if err := exportMetrics(e.log, path, reports...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d report(s) to %s\n", len(reports), path)
	return nil
}

// latestReports decodes the newest stored report of each login. Logins
// without snapshots are skipped.
func latestReports(db *store.DB, logins []string) ([]*report.Report, error) {
	var reports []*report.Report
	for _, login := range logins {
		s, err := db.GetSnapshotN(login, 1)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot for %s: %w", login, err)
		}
		if s == nil {
			continue
		}
		doc, err := db.GetReport(s.ID)
		if err != nil {
			return nil, fmt.Errorf("loading report #%d: %w", s.ID, err)
		}
		var r report.Report
		if err := json.Unmarshal(doc, &r); err != nil {
			return nil, fmt.Errorf("decoding report #%d: %w", s.ID, err)
		}
		reports = append(reports, &r)
	}
	return reports, nil
}
