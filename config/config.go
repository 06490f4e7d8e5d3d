package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Login credentials and token lifetime
//   - database.go: Ticket store selection and backing stores
//   - http.go: HTTP server configuration
//   - web.go: Static file serving
//   - nutrition.go: Image analysis client
//
// An AppConfig is built once at startup and passed explicitly; nothing reads
// it through package state.
type AppConfig struct {
	// IsDev controls development mode behavior (seeding, verbose logging).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev   bool   `env:"DEV"      envDefault:"false"`
	NodeEnv string `env:"NODE_ENV"`

	// LogLevel accepts slog level names (DEBUG, INFO, WARN, ERROR).
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	Auth AuthConfig
	HTTP HTTPConfig
	Web  WebConfig

	// Ticket storage
	Store    StoreConfig
	Postgres DBConfig     `envPrefix:"DB_"`
	Redis    RedisConfig  `envPrefix:"REDIS_"`
	SQLite   SQLiteConfig `envPrefix:"SQLITE_"`

	Nutrition NutritionConfig
}

// Parse reads the configuration from the process environment.
func Parse() (AppConfig, error) {
	return parse(env.Options{})
}

// ParseEnv reads the configuration from the given variables only.
func ParseEnv(vars map[string]string) (AppConfig, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (AppConfig, error) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		if name, ok := missingVar(err); ok {
			return cfg, apperrors.ConfigMissingEnv(name, err)
		}
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// missingVar reports the first required variable that was not set.
func missingVar(err error) (string, bool) {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return "", false
	}
	for _, e := range agg.Errors {
		var notSet env.VarIsNotSetError
		if errors.As(e, &notSet) {
			return notSet.Key, true
		}
		var empty env.EmptyVarError
		if errors.As(e, &empty) {
			return empty.Key, true
		}
	}
	return "", false
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Auth.Sanitize()
	c.Web.Sanitize()
	c.SQLite.Sanitize()
	c.Nutrition.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// Validate reports values that parse but cannot be used.
func (c *AppConfig) Validate() error {
	if c.Web.Folder == "" {
		return apperrors.ConfigMissingEnv("SERVICE_WEB_FOLDER", nil)
	}
	if c.Auth.DemoUsername == "" || c.Auth.DemoPassword == "" {
		return apperrors.Validation("AUTH_DEMO_USERNAME and AUTH_DEMO_PASSWORD cannot be empty")
	}
	if c.Store.Kind == StoreSQLite && c.SQLite.Path == "" {
		return apperrors.ConfigMissingEnv("SQLITE_PATH", nil)
	}
	return nil
}

// detectDevMode treats NODE_ENV=development as a fallback for DEV.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(strings.TrimSpace(c.NodeEnv))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
