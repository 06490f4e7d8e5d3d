package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/target/ticketdesk-api/config"
	"github.com/target/ticketdesk-api/internal/adapters/devauth"
	"github.com/target/ticketdesk-api/internal/adapters/gemini"
	"github.com/target/ticketdesk-api/internal/ports"
	"github.com/target/ticketdesk-api/internal/service"
)

// ServiceContainer holds the services exposed over HTTP.
type ServiceContainer struct {
	Auth      *service.AuthService
	Tickets   *service.TicketService
	Nutrition *service.NutritionService
}

// ServiceDeps contains dependencies for building services.
type ServiceDeps struct {
	Config *config.AppConfig
	Store  ports.TicketStore
	Logger *slog.Logger
}

// NewServices wires the domain services from configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil || deps.Store == nil {
		return ServiceContainer{}, errors.New("service deps require config and store")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	verifier, err := devauth.NewProvider(devauth.Config{
		Username: cfg.Auth.DemoUsername,
		Password: cfg.Auth.DemoPassword,
		UserID:   cfg.Auth.DemoUserID,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create credential verifier: %w", err)
	}

	analyzer, err := newNutritionAnalyzer(cfg.Nutrition, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Verifier: verifier,
			TokenTTL: cfg.Auth.TokenTTL,
		}),
		Tickets: service.NewTicketService(service.TicketServiceOptions{
			Store:  deps.Store,
			Logger: logger,
		}),
		Nutrition: service.NewNutritionService(service.NutritionServiceOptions{Analyzer: analyzer}),
	}, nil
}

//nolint:ireturn // a nil analyzer disables image analysis.
func newNutritionAnalyzer(cfg config.NutritionConfig, logger *slog.Logger) (ports.NutritionAnalyzer, error) {
	if !cfg.Enabled() {
		logger.Info("image analysis disabled", "reason", "GEMINI_API_KEY not set")
		return nil, nil
	}
	client, err := gemini.NewClient(gemini.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}
