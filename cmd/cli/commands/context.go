package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/notify"
	"github.com/eastgate-centre/shift-cover/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Notifier notify.Notifier
	Logger   *zap.Logger
	Ctx      context.Context
}
