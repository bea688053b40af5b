package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListRequestsCmd creates the listRequests command
func ListRequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRequests <worker_id>",
		Short: "List a worker's substitute requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID := args[0]

			requests, err := app.Database.ListSubRequestsByUser(app.Ctx, workerID)
			if err != nil {
				return fmt.Errorf("failed to list requests: %w", err)
			}

			if len(requests) == 0 {
				fmt.Println("No substitute requests found for this worker.")
				return nil
			}

			fmt.Printf("\nFound %d request(s):\n\n", len(requests))
			for _, req := range requests {
				nominated := ""
				if req.HasNominatedSub {
					nominated = fmt.Sprintf(" [nominated: %s]", *req.NominatedSubUserID)
				}
				fmt.Printf("- %s  %s %s-%s  %-32s %s%s\n",
					req.ID, req.Date, req.StartTime, req.EndTime, req.Status, req.Type, nominated)
			}
			fmt.Println()

			return nil
		},
	}
}
