package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/InteriMed/Medishift-sub000/pkg/core/services"
)

// ResolveGapCmd creates the resolve-gap command
func ResolveGapCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-gap <facility_id> <date> <role> <start> <end>",
		Short: "Rank eligible workers for a coverage gap",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := services.ResolveGap(app.Ctx, app.Database, app.Logger,
				app.Cfg.RulesForFacility(args[0]),
				app.Cfg.ScoringWeights(),
				app.Cfg.MaxConcurrentScans,
				services.GapParams{
					FacilityID:  args[0],
					Date:        args[1],
					MissingRole: args[2],
					StartTime:   args[3],
					EndTime:     args[4],
				})
			if err != nil {
				return err
			}

			if len(outcome.Candidates) == 0 {
				fmt.Printf("\nNo eligible workers found\n\n")
				return nil
			}

			fmt.Printf("\nCandidates (%d):\n\n", len(outcome.Candidates))
			for i, c := range outcome.Candidates {
				fmt.Printf("  %2d. %-12s score %4d  %-22s %s\n",
					i+1, c.UserID, c.Score, c.Category, c.Reason)
				for _, v := range c.Violations {
					fmt.Printf("      [%s] %s\n", v.Code, v.Message)
				}
			}
			fmt.Println()

			if outcome.Recommendation != nil {
				fmt.Printf("Recommended: %s (score %d, %s)\n\n",
					outcome.Recommendation.UserID, outcome.Recommendation.Score, outcome.Recommendation.Category)
			} else {
				fmt.Printf("No recommendation - every candidate scored zero or below\n\n")
			}

			if outcome.Truncated {
				fmt.Printf("Note: scan was cancelled before all workers were considered\n\n")
			}

			return nil
		},
	}
}
