package config

import (
	"strings"
	"time"
)

// AuthConfig holds the single demo login and the lifetime of issued tokens.
type AuthConfig struct {
	DemoUsername string        `env:"AUTH_DEMO_USERNAME" envDefault:"demo"`
	DemoPassword string        `env:"AUTH_DEMO_PASSWORD" envDefault:"123"`
	DemoUserID   uint64        `env:"AUTH_DEMO_USER_ID"  envDefault:"1"`
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL"     envDefault:"24h"`
}

// Sanitize trims credentials and falls back to a 24h token lifetime.
func (a *AuthConfig) Sanitize() {
	a.DemoUsername = strings.TrimSpace(a.DemoUsername)
	if a.TokenTTL <= 0 {
		a.TokenTTL = 24 * time.Hour
	}
}
