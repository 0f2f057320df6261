package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/InteriMed/Medishift-sub000/pkg/core/services"
)

// CreateShiftCmd creates the create-shift command
func CreateShiftCmd(app *AppContext) *cobra.Command {
	var (
		userID      string
		repeat      string
		repeatUntil string
		force       bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "create-shift <facility_id> <role> <date> <start> <end>",
		Short: "Create a shift (or recurring series) after validating it",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.CreateShift(app.Ctx, app.Database, app.Logger,
				app.Cfg.RulesForFacility(args[0]),
				services.CreateShiftParams{
					UserID:      userID,
					FacilityID:  args[0],
					Role:        args[1],
					Date:        args[2],
					StartTime:   args[3],
					EndTime:     args[4],
					Repeat:      repeat,
					RepeatUntil: repeatUntil,
					Force:       force,
					DryRun:      dryRun,
				})
			if err != nil {
				return err
			}

			if !result.Success {
				fmt.Printf("\n✗ Batch rejected - constraint violations:\n\n")
				for _, pv := range result.Validations {
					if pv.Result.Valid {
						continue
					}
					fmt.Printf("  %s:\n", pv.Date)
					for _, v := range pv.Result.Violations {
						fmt.Printf("    [%s] %s: %s\n", v.Severity, v.Code, v.Message)
					}
				}
				fmt.Println()
				return nil
			}

			if dryRun {
				fmt.Printf("\n✓ Dry run: %d shift(s) would be created\n\n", len(result.Created))
			} else {
				fmt.Printf("\n✓ Created %d shift(s)\n\n", len(result.Created))
			}
			for _, s := range result.Created {
				fmt.Printf("  %s  %s %s-%s  (%s)\n", s.ID, s.Date, s.StartTime, s.EndTime, s.Status)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Worker to assign (empty creates an open shift)")
	cmd.Flags().StringVar(&repeat, "repeat", "", "RRULE recurrence (e.g. FREQ=WEEKLY;BYDAY=MO)")
	cmd.Flags().StringVar(&repeatUntil, "repeat-until", "", "Last date of the recurrence (required with --repeat)")
	cmd.Flags().BoolVar(&force, "force", false, "Downgrade blocking violations to warnings")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without saving")

	return cmd
}
