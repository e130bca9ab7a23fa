package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/hiresignal/internal/profile"
)

var fetchOut string

var fetchCmd = &cobra.Command{
	Use:   "fetch <login>",
	Short: "Fetch a GitHub profile and save the raw input snapshot",
	Long: `Fetch everything a report needs for a GitHub user and write it as an
input snapshot. The encoding follows the file extension: .yaml or .yml
writes YAML, anything else JSON. Without --out the snapshot is printed to
stdout as JSON.

Snapshots can be analyzed offline with 'hiresignal analyze --input'.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Write the snapshot to this file")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	in, err := fetchProfile(cmd.Context(), e, args[0])
	if err != nil {
		return err
	}

	if fetchOut == "" {
		return writeJSON(cmd.OutOrStdout(), in)
	}
	if err := profile.SaveInput(fetchOut, in); err != nil {
		return err
	}
	e.log.Info("snapshot written",
		zap.String("path", fetchOut),
		zap.Int("repos", len(in.Repositories)),
		zap.Int("readmes", len(in.Readmes)),
	)
	return nil
}
