// Package app contains the Cobra command tree for hiresignal.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/hiresignal/internal/config"
	"github.com/blackwell-systems/hiresignal/internal/logger"
	"github.com/blackwell-systems/hiresignal/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "hiresignal",
	Short: "Score a GitHub profile the way a technical recruiter reads it",
	Long: `hiresignal analyzes a public GitHub profile and produces a hiring-signal
report: nine dimension scores, strengths and red flags, recruiter lens
verdicts, career-path alignment, and ranked recommendations with projected
score gains.

Reports can be persisted and tracked over time, and exported as Prometheus
gauges for a node-exporter textfile collector.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/hiresignal/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// env bundles what every command needs after startup.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

// setup loads configuration, builds the logger and configures color output
// for a command invocation.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug || flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	output.SetNoColor(!useColor(cmd, cfg))
	return &env{cfg: cfg, log: log}, nil
}

// useColor reports whether styled output should be written: color must be
// enabled by flag and config, and stdout must be a terminal.
func useColor(cmd *cobra.Command, cfg *config.Config) bool {
	if flagNoColor || !cfg.Output.Color {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
