package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers",
		Short: "List the centre's workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := app.Database.ListWorkers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list workers: %w", err)
			}

			if len(workers) == 0 {
				fmt.Println("No workers found.")
				return nil
			}

			fmt.Printf("\nFound %d worker(s):\n\n", len(workers))
			for _, w := range workers {
				fmt.Printf("- %s  %-25s %-30s %s\n",
					w.ID, fmt.Sprintf("%s %s", w.FirstName, w.LastName), w.Email, w.Status)
			}
			fmt.Println()

			return nil
		},
	}
}
