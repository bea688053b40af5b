package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eastgate-centre/shift-cover/pkg/core/shifts"
)

// AddRecurrenceCmd creates the addRecurrence command
func AddRecurrenceCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addRecurrence <shift_id> <rrule> <dtstart>",
		Short: "Store a recurrence pattern for a shift",
		Long:  `Store a recurrence pattern for a shift, e.g. addRecurrence <shift_id> "FREQ=WEEKLY;INTERVAL=2;BYDAY=TU" 2024-06-04. The dtstart date anchors interval rules.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")

			rec, err := shifts.AddRecurrence(app.Ctx, app.Database, app.Logger, args[0], args[1], args[2], label)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Stored recurrence %s for shift %s\n", rec.ID, rec.ShiftID)
			return nil
		},
	}

	cmd.Flags().String("label", "", "Human-readable description of the pattern")

	return cmd
}
