package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/target/ticketdesk-api/config"
	httpx "github.com/target/ticketdesk-api/internal/http"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Checks   []httpx.HealthCheck
	Logger   *slog.Logger
}

// NewHTTPServer builds the server with the full middleware pipeline.
func NewHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	services := httpx.RouterServices{
		Auth:           cfg.Services.Auth,
		Tickets:        cfg.Services.Tickets,
		CookieDomain:   appCfg.HTTP.CookieDomain,
		AllowedOrigins: appCfg.HTTP.AllowedOrigins,
		WebFolder:      appCfg.Web.Folder,
		HealthChecks:   cfg.Checks,
		Logger:         logger,
	}
	if cfg.Services.Nutrition != nil {
		services.Nutrition = cfg.Services.Nutrition
	}

	return &http.Server{
		Addr:         appCfg.HTTP.Addr,
		Handler:      httpx.NewRouter(services),
		ReadTimeout:  appCfg.HTTP.ReadTimeout,
		WriteTimeout: appCfg.HTTP.WriteTimeout,
		IdleTimeout:  appCfg.HTTP.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}, nil
}

// ServeConfig contains dependencies for Serve.
type ServeConfig struct {
	Server          *http.Server
	Listener        net.Listener // optional; bound from Server.Addr when nil
	ShutdownTimeout time.Duration // defaults to 10s
	Logger          *slog.Logger
}

// Serve runs the server until ctx is canceled or the server fails, then
// shuts it down gracefully.
func Serve(ctx context.Context, cfg ServeConfig) error {
	if cfg.Server == nil {
		return errors.New("server is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	ln := cfg.Listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", cfg.Server.Addr); err != nil {
			return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "starting HTTP server", "addr", ln.Addr().String())
		if err := cfg.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), timeout)
		defer cancel()
		if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
