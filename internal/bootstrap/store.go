package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/target/ticketdesk-api/config"
	"github.com/target/ticketdesk-api/internal/adapters/memstore"
	redisstore "github.com/target/ticketdesk-api/internal/adapters/redis"
	"github.com/target/ticketdesk-api/internal/adapters/sqlite"
	"github.com/target/ticketdesk-api/internal/data"
	httpx "github.com/target/ticketdesk-api/internal/http"
	"github.com/target/ticketdesk-api/internal/ports"
)

// TicketBackend is the selected ticket store with its health probes and
// the cleanup that releases its connections.
type TicketBackend struct {
	Kind   config.StoreKind
	Store  ports.TicketStore
	Checks []httpx.HealthCheck
	closer func() error
}

// Close releases the backend's connections.
func (b *TicketBackend) Close() error {
	if b == nil || b.closer == nil {
		return nil
	}
	return b.closer()
}

// StoreDeps groups the inputs of BuildTicketStore.
type StoreDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// BuildTicketStore connects the backend selected by TICKET_STORE.
func BuildTicketStore(ctx context.Context, deps StoreDeps) (*TicketBackend, error) {
	if deps.Config == nil {
		return nil, errors.New("store config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	switch cfg.Store.Kind {
	case config.StoreRedis:
		return buildRedisBackend(ctx, cfg, logger)
	case config.StorePostgres:
		return buildPostgresBackend(ctx, cfg, logger)
	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.SQLite.Path})
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.InfoContext(ctx, "sqlite ticket store opened", "path", cfg.SQLite.Path)
		return &TicketBackend{
			Kind:   config.StoreSQLite,
			Store:  store,
			Checks: []httpx.HealthCheck{store.Ping},
			closer: store.Close,
		}, nil
	case config.StoreMemory, "":
		return &TicketBackend{Kind: config.StoreMemory, Store: memstore.NewTicketStore()}, nil
	default:
		return nil, fmt.Errorf("unsupported ticket store %q", cfg.Store.Kind)
	}
}

func buildRedisBackend(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*TicketBackend, error) {
	client, err := ConnectRedis(ctx, DatabaseConfig{RedisConfig: cfg.Redis, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &TicketBackend{
		Kind:   config.StoreRedis,
		Store:  redisstore.NewTicketStoreWithKey(client, cfg.Store.RedisKey),
		Checks: []httpx.HealthCheck{redisPing(client)},
		closer: client.Close,
	}, nil
}

func redisPing(client redis.UniversalClient) httpx.HealthCheck {
	return func(ctx context.Context) error { return client.Ping(ctx).Err() }
}

func buildPostgresBackend(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*TicketBackend, error) {
	db, err := ConnectDB(ctx, DatabaseConfig{DBConfig: cfg.Postgres, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if cfg.Postgres.RunMigrationsOnStart || cfg.IsDev {
		if err = RunMigrations(ctx, db, logger); err != nil {
			return nil, errors.Join(err, closeDB(db))
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	return &TicketBackend{
		Kind:   config.StorePostgres,
		Store:  data.NewTicketRepo(db),
		Checks: []httpx.HealthCheck{db.PingContext},
		closer: func() error { return closeDB(db) },
	}, nil
}

func closeDB(db *sql.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
