package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/wmfl-standings/internal/app"
	"github.com/riskibarqy/wmfl-standings/internal/config"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(loadServices)
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// loadServices builds services from the environment. Logs go to stderr so
// stdout carries only command output.
func loadServices(ctx context.Context) (*app.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:    cfg.LogLevel,
		Output:   os.Stderr,
		FilePath: cfg.LogFile,
	}).With("service", cfg.ServiceName, "component", "wmflctl")
	logging.SetDefault(logger)

	return app.NewServices(ctx, cfg, logger)
}
