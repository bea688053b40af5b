package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eastgate-centre/shift-cover/pkg/identity"
)

// IssueTokenCmd creates the issueToken command, used to mint API session
// tokens for workers until the auth provider integration lands
func IssueTokenCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issueToken <worker_id>",
		Short: "Issue an API session token for a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workerID := args[0]
			role, _ := cmd.Flags().GetString("role")

			worker, err := app.Database.GetWorker(app.Ctx, workerID)
			if err != nil {
				return fmt.Errorf("failed to look up worker: %w", err)
			}
			if worker == nil {
				return fmt.Errorf("worker %s not found", workerID)
			}

			token, err := identity.IssueToken(app.Cfg.JWTSecret, workerID, role, app.Cfg.TokenDuration)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			fmt.Printf("\n✓ Token for %s %s (valid %s):\n\n%s\n\n",
				worker.FirstName, worker.LastName, app.Cfg.TokenDuration, token)
			return nil
		},
	}

	cmd.Flags().String("role", "worker", "Role claim to embed in the token")

	return cmd
}
