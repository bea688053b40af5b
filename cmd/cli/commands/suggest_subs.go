package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eastgate-centre/shift-cover/pkg/core/availability"
)

// SuggestSubsCmd creates the suggestSubs command
func SuggestSubsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "suggestSubs <shift_id> <shift_recurrence_id>",
		Short: "Rank workers willing to cover an occurrence of a shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID := args[0]
			recurrenceID := args[1]

			candidates, err := availability.SuggestSubstitutes(app.Ctx, app.Database, app.Logger, shiftID, recurrenceID, "")
			if err != nil {
				return err
			}

			if len(candidates) == 0 {
				fmt.Println("No workers have stated availability for this shift.")
				return nil
			}

			fmt.Printf("\nFound %d candidate(s):\n\n", len(candidates))
			for i, c := range candidates {
				fmt.Printf("  %2d. %-30s score %d\n", i+1,
					fmt.Sprintf("%s %s", c.Worker.FirstName, c.Worker.LastName), c.Score)
			}
			fmt.Println()

			return nil
		},
	}
}
