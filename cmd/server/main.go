package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/internal/api"
	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/postgres"
	"github.com/eastgate-centre/shift-cover/pkg/utils/logging"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var env = flag.String("env", "", "Environment suffix for the config file (test, prod, ...)")
	flag.Parse()

	logger, err := logging.InitLogger("server")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadWithEnv(*env)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting shift-cover server",
		zap.String("version", version),
		zap.String("build_time", buildTime),
		zap.String("addr", cfg.Addr))

	ctx := context.Background()

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}

	applied, err := database.RunMigrations(ctx)
	if err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if applied > 0 {
		logger.Info("Applied database migrations", zap.Int("count", applied))
	}

	handler := api.SetupRoutes(cfg, version, buildTime, database, logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	database.Close()
	logger.Info("Server exited")
}
