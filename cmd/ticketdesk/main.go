package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/target/ticketdesk-api/config"
	"github.com/target/ticketdesk-api/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var level slog.LevelVar
	logger := bootstrap.InitLogger(&level)
	if err := run(ctx, logger, &level); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		stop()
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger, level *slog.LevelVar) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	level.Set(cfg.LogLevel)

	logStartupInfo(ctx, logger, &cfg)

	return bootstrap.Run(ctx, &cfg, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting ticketdesk service",
		"addr", cfg.HTTP.Addr,
		"ticket_store", cfg.Store.Kind,
		"web_folder", cfg.Web.Folder,
		"image_analysis", cfg.Nutrition.Enabled(),
		"dev", cfg.IsDev)
}
