package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/InteriMed/Medishift-sub000/pkg/core/constraints"
	"github.com/InteriMed/Medishift-sub000/pkg/core/services"
)

// ValidateShiftCmd creates the validate-shift command
func ValidateShiftCmd(app *AppContext) *cobra.Command {
	var (
		excludeShiftID string
		force          bool
		forceAuthor    string
		forceReason    string
		role           string
	)

	cmd := &cobra.Command{
		Use:   "validate-shift <user_id> <facility_id> <date> <start> <end>",
		Short: "Validate a proposed shift placement against labor-time rules",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ValidateMove(app.Ctx, app.Database, app.Logger,
				app.Cfg.RulesForFacility(args[1]),
				services.MoveParams{
					UserID:     args[0],
					FacilityID: args[1],
					Placement: constraints.ShiftPlacement{
						Date:      args[2],
						StartTime: args[3],
						EndTime:   args[4],
						Role:      role,
					},
					ExcludeShiftID: excludeShiftID,
					Force:          force,
					ForceAuthor:    forceAuthor,
					ForceReason:    forceReason,
				})
			if err != nil {
				return err
			}

			printValidationResult(result.Result)

			if result.Override != nil {
				fmt.Printf("Override record (persist this with your justification):\n")
				fmt.Printf("  Author: %s\n  Reason: %s\n  Bypassed: %v\n\n",
					result.Override.Author, result.Override.Reason, result.Override.BypassedCodes)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&excludeShiftID, "exclude-shift", "", "Shift ID to exclude (when moving an existing shift)")
	cmd.Flags().StringVar(&role, "role", "", "Role of the proposed shift")
	cmd.Flags().BoolVar(&force, "force", false, "Downgrade blocking violations to warnings")
	cmd.Flags().StringVar(&forceAuthor, "force-author", "", "Who authorized the override")
	cmd.Flags().StringVar(&forceReason, "force-reason", "", "Why the override was authorized")

	return cmd
}

func printValidationResult(result constraints.ValidationResult) {
	if result.Valid {
		fmt.Printf("\n✓ Placement is valid (weekly burden: %.1fh)\n\n", result.BurdenScore)
	} else {
		fmt.Printf("\n✗ Placement violates %d rule(s) (weekly burden: %.1fh)\n\n", len(result.Violations), result.BurdenScore)
	}

	for _, v := range result.Violations {
		fmt.Printf("  [%s] %s: %s\n", v.Severity, v.Code, v.Message)
		if len(v.AffectedShifts) > 0 {
			fmt.Printf("        affected shifts: %v\n", v.AffectedShifts)
		}
	}
	for _, w := range result.Warnings {
		fmt.Printf("  (!) %s\n", w)
	}
	if len(result.Violations) > 0 || len(result.Warnings) > 0 {
		fmt.Println()
	}
}
