package config

import (
	"fmt"
	"strings"
)

// StoreKind selects the ticket store backend.
type StoreKind string

const (
	// StoreMemory keeps tickets in process memory.
	StoreMemory StoreKind = "memory"
	// StoreRedis keeps tickets in a Redis list.
	StoreRedis StoreKind = "redis"
	// StorePostgres keeps tickets in PostgreSQL.
	StorePostgres StoreKind = "postgres"
	// StoreSQLite keeps tickets in a local SQLite file.
	StoreSQLite StoreKind = "sqlite"
)

// UnmarshalText implements encoding.TextUnmarshaler for StoreKind.
func (s *StoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "", "memory", "mem":
		*s = StoreMemory
	case "redis":
		*s = StoreRedis
	case "postgres", "postgresql", "pg":
		*s = StorePostgres
	case "sqlite", "sqlite3":
		*s = StoreSQLite
	default:
		return fmt.Errorf("invalid TICKET_STORE: %q (valid options: memory, redis, postgres, sqlite)", v)
	}
	return nil
}

// StoreConfig selects and names the ticket store.
type StoreConfig struct {
	Kind StoreKind `env:"TICKET_STORE" envDefault:"memory"`
	// RedisKey is the list key used when Kind is redis.
	RedisKey string `env:"TICKET_REDIS_KEY" envDefault:"ticketdesk:tickets"`
}

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"ticketdesk"`
	Password string `env:"PASSWORD"                envDefault:"ticketdesk"`
	Name     string `env:"NAME"                    envDefault:"ticketdesk"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// SQLiteConfig contains SQLite ticket store configuration.
type SQLiteConfig struct {
	Path string `env:"PATH" envDefault:"ticketdesk.db"`
}

// Sanitize trims the database path.
func (s *SQLiteConfig) Sanitize() {
	s.Path = strings.TrimSpace(s.Path)
}
