package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/cmd/cli/commands"
	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/clients/gmailclient"
	"github.com/eastgate-centre/shift-cover/pkg/notify"
	"github.com/eastgate-centre/shift-cover/pkg/postgres"
	"github.com/eastgate-centre/shift-cover/pkg/utils/logging"
)

var (
	env string
	// app is populated by initApp before any command's RunE executes
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Shift Cover CLI - Coordinate substitute cover for centre shifts",
		Long:  `A CLI tool for coordinating substitute cover: expiring stale requests, ranking candidates, and inspecting requests.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (test, prod, etc.)")

	rootCmd.AddCommand(commands.ExpireRequestsCmd(app))
	rootCmd.AddCommand(commands.SuggestSubsCmd(app))
	rootCmd.AddCommand(commands.ListRequestsCmd(app))
	rootCmd.AddCommand(commands.ListWorkersCmd(app))
	rootCmd.AddCommand(commands.AddRecurrenceCmd(app))
	rootCmd.AddCommand(commands.IssueTokenCmd(app))
	rootCmd.AddCommand(commands.MigrateCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database and notifier
func initApp() error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application", zap.String("environment", env))

	logger.Info("Loading configuration")
	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded successfully")

	ctx := context.Background()

	logger.Info("Connecting to database")
	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Debug("Database connection established")

	// Notifications always land in the outbox; email delivery is added when
	// a Gmail account is configured.
	var notifier notify.Notifier = notify.NewOutbox(database)
	if cfg.GmailUserID != "" {
		logger.Info("Initializing gmail client")
		oauthCfg, err := config.LoadOAuthClientWithEnv(env)
		if err != nil {
			return fmt.Errorf("failed to load OAuth client config: %w", err)
		}

		gmailClient, err := gmailclient.NewClient(ctx, oauthCfg)
		if err != nil {
			return fmt.Errorf("failed to create gmail client: %w", err)
		}
		logger.Debug("Gmail client initialized successfully")

		notifier = notify.Multi{notifier, notify.NewEmail(gmailClient, database, cfg.GmailSender)}
	}

	app.Cfg = cfg
	app.Database = database
	app.Notifier = notifier
	app.Logger = logger
	app.Ctx = ctx

	return nil
}
