package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/target/ticketdesk-api/config"
	"github.com/target/ticketdesk-api/internal/devseed"
)

// Run connects the ticket store, wires the services and serves HTTP until
// ctx is canceled.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (err error) {
	if cfg == nil {
		return errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := BuildTicketStore(ctx, StoreDeps{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close ticket store failed", "error", cerr)
			err = errors.Join(err, cerr)
		}
	}()

	if cfg.IsDev {
		if _, seedErr := devseed.Run(ctx, devseed.Options{
			Store:     backend.Store,
			CreatorID: cfg.Auth.DemoUserID,
			Logger:    logger,
		}); seedErr != nil {
			logger.WarnContext(ctx, "dev seed failed", "error", seedErr)
		}
	}

	services, err := NewServices(&ServiceDeps{Config: cfg, Store: backend.Store, Logger: logger})
	if err != nil {
		return err
	}

	server, err := NewHTTPServer(&HTTPServerConfig{
		Config:   cfg,
		Services: services,
		Checks:   backend.Checks,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}

	return Serve(ctx, ServeConfig{
		Server:          server,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Logger:          logger,
	})
}
