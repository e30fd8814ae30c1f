package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/matchtips/internal/scoring"
	"github.com/yourusername/matchtips/internal/service"
)

var (
	teamAScores      []string
	teamBScores      []string
	headToHeadScores []string
)

func init() {
	estimateCmd.Flags().StringSliceVarP(&teamAScores, "team-a", "a", nil, "Recent scorelines of the first team, e.g. 2-1,0-0")
	estimateCmd.Flags().StringSliceVarP(&teamBScores, "team-b", "b", nil, "Recent scorelines of the second team")
	estimateCmd.Flags().StringSliceVar(&headToHeadScores, "h2h", nil, "Recent head-to-head scorelines")
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Suggest a bet from recent scorelines",
	Long: `Averages total goals and the both-teams-scored rate over three groups of
scorelines (first team, second team, head to head) and suggests a single bet.
Lines that are not of the form "<goals>-<goals>" are ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTipService(scoring.NewEngine(scoring.Options{}), appLogger, cfg.Metrics.Enabled)
		report, err := svc.Estimate(cmd.Context(), teamAScores, teamBScores, headToHeadScores)
		if err != nil {
			return fmt.Errorf("failed to estimate: %w", err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, report)
		}
		fmt.Fprint(out, report.Text)
		if report.Skipped > 0 {
			fmt.Fprintf(out, "\nSkipped %d unreadable scoreline(s)\n", report.Skipped)
		}
		return nil
	},
}
