package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applied, err := app.Database.RunMigrations(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			if applied == 0 {
				fmt.Println("Database schema is up to date.")
				return nil
			}

			fmt.Printf("✓ Applied %d database migration(s)\n", applied)
			return nil
		},
	}
}
