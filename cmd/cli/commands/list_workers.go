package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListWorkersCmd creates the list-workers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-workers <facility_id>",
		Short: "List all workers of a facility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Database.ListWorkers(app.Ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nWorkers (%d):\n\n", len(workers))
			for _, w := range workers {
				fmt.Printf("  %-12s %-20s %-15s %-10s %s\n",
					w.ID, w.LastName+", "+w.FirstName, w.Role, w.EmploymentType, w.Status)
			}
			fmt.Println()

			return nil
		},
	}
}
