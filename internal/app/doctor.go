package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hiresignal/internal/config"
	"github.com/blackwell-systems/hiresignal/internal/output"
	"github.com/blackwell-systems/hiresignal/internal/store"
)

var doctorOffline bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the hiresignal setup is healthy",
	Long: `Run a series of health checks against your hiresignal configuration,
local database and GitHub API access. Prints a pass/fail line for each
check and a summary of how many checks passed.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorOffline, "offline", false, "Skip the GitHub API check")
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	checks := []doctorCheck{
		checkToken(e.cfg),
		checkDatabase(e.cfg.DBPath),
		checkTextfile(e.cfg.Metrics.Textfile),
	}
	if !doctorOffline {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		checks = append(checks, checkGitHub(ctx, e))
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, doctorOutput{Checks: checks, PassedCount: passed, TotalCount: len(checks)})
	}

	fmt.Fprintln(out, output.Section("Doctor", ruleWidth(e.cfg.Output.Width)))
	fmt.Fprintln(out)
	for _, c := range checks {
		renderDoctorCheck(out, c)
	}
	fmt.Fprintln(out)

	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Fprintf(out, " %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Fprintf(out, " %s\n\n", output.StyleWarning.Render(summary))
	}
	return nil
}

func renderDoctorCheck(w io.Writer, c doctorCheck) {
	indicator := output.StyleWarning.Render("✗")
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	}
	fmt.Fprintf(w, "  %s  %s %s\n", indicator, output.StyleLabel.Render(c.Name), output.StyleMuted.Render(c.Message))
}

// checkToken passes when an API token is configured. Anonymous access works
// but is limited to 60 requests per hour.
func checkToken(cfg *config.Config) doctorCheck {
	if cfg.GitHub.Token == "" {
		return doctorCheck{
			Name:    "GitHub token",
			Passed:  false,
			Message: fmt.Sprintf("not set; anonymous access is limited to 60 requests/hour (set %s_GITHUB_TOKEN)", config.EnvPrefix),
		}
	}
	return doctorCheck{Name: "GitHub token", Passed: true, Message: "configured"}
}

// checkDatabase opens (and migrates) the snapshot database.
func checkDatabase(path string) doctorCheck {
	db, err := store.Open(path)
	if err != nil {
		return doctorCheck{Name: "Snapshot database", Passed: false, Message: err.Error()}
	}
	defer func() { _ = db.Close() }()
	return doctorCheck{Name: "Snapshot database", Passed: true, Message: path}
}

// checkTextfile verifies the metrics textfile directory exists. An empty path
// means export is disabled, which passes.
func checkTextfile(path string) doctorCheck {
	if path == "" {
		return doctorCheck{Name: "Metrics textfile", Passed: true, Message: "export disabled"}
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return doctorCheck{Name: "Metrics textfile", Passed: false, Message: fmt.Sprintf("directory not found: %s", dir)}
	}
	return doctorCheck{Name: "Metrics textfile", Passed: true, Message: path}
}

// checkGitHub queries the API quota, which also proves connectivity and
// token validity.
func checkGitHub(ctx context.Context, e *env) doctorCheck {
	client, err := newGitHubClient(e)
	if err != nil {
		return doctorCheck{Name: "GitHub API", Passed: false, Message: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	q, err := client.RateLimit(ctx)
	if err != nil {
		return doctorCheck{Name: "GitHub API", Passed: false, Message: err.Error()}
	}
	msg := fmt.Sprintf("%d/%d requests remaining, resets %s", q.Remaining, q.Limit, q.Reset.Format(time.Kitchen))
	return doctorCheck{Name: "GitHub API", Passed: q.Remaining > 0, Message: msg}
}
