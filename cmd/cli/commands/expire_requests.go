package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eastgate-centre/shift-cover/pkg/core/subrequest"
)

// ExpireRequestsCmd creates the expireRequests command, the entry point for
// the daily cron trigger
func ExpireRequestsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expireRequests",
		Short: "Expire unfilled cover requests whose date has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, _ := cmd.Flags().GetString("as-of")
			if asOf == "" {
				asOf = time.Now().Format("2006-01-02")
			}

			count, err := subrequest.ExpireStale(app.Ctx, app.Database, app.Notifier, app.Logger, asOf)
			if err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("No stale cover requests to expire.")
				return nil
			}

			fmt.Printf("\n✓ Expired %d stale cover request(s) as of %s\n", count, asOf)
			return nil
		},
	}

	cmd.Flags().String("as-of", "", "Cutoff date (YYYY-MM-DD, defaults to today)")

	return cmd
}
