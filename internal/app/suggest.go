package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hiresignal/internal/report"
	"github.com/blackwell-systems/hiresignal/internal/suggest"
)

var (
	suggestLimit    int
	suggestCategory string
	suggestInput    string
	suggestNow      string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [login]",
	Short: "Show ranked recommendations and what-if projections",
	Long: `Analyze a profile and print only the ranked improvement recommendations
with their predicted score gains, followed by the projected overall score
for each what-if scenario.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum number of recommendations to show")
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Filter by category (Profile, Repositories, Documentation, Activity, Community, Engineering, Ownership, Growth)")
	suggestCmd.Flags().StringVar(&suggestInput, "input", "", "Analyze a saved input snapshot instead of fetching")
	suggestCmd.Flags().StringVar(&suggestNow, "now", "", "Reference time in RFC3339 (default: current time)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	now, err := parseNow(suggestNow)
	if err != nil {
		return err
	}
	in, err := loadInput(cmd.Context(), e, args, suggestInput)
	if err != nil {
		return err
	}
	r := report.Analyze(*in, now)

	recs := filterByCategory(r.Recommendations, suggestCategory)
	if suggestLimit > 0 && len(recs) > suggestLimit {
		recs = recs[:suggestLimit]
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, map[string]any{
			"login":           r.Login,
			"overall_score":   r.OverallScore,
			"recommendations": recs,
			"simulations":     r.Simulations,
		})
	}

	rw := ruleWidth(e.cfg.Output.Width)
	fmt.Fprintf(out, "\n %s: overall %d\n", r.Login, r.OverallScore)
	renderRecommendations(out, recs, rw)
	renderSimulations(out, r.Simulations, rw)
	fmt.Fprintln(out)
	return nil
}

func filterByCategory(recs []suggest.Recommendation, category string) []suggest.Recommendation {
	if category == "" {
		return recs
	}
	var filtered []suggest.Recommendation
	for _, r := range recs {
		if strings.EqualFold(r.Category, category) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
