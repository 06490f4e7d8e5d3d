package config

import (
	"strings"
	"time"
)

const minTimeout = time.Second

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":3000"`

	// CookieDomain is the domain for auth cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// AllowedOrigins lists browser origins allowed to make credentialed
	// cross-origin requests. Empty disables CORS handling.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"90s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Addr = strings.TrimSpace(h.Addr)
	if h.Addr == "" {
		h.Addr = ":3000"
	}
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)

	origins := h.AllowedOrigins[:0]
	for _, o := range h.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	h.AllowedOrigins = origins

	for _, d := range []*time.Duration{&h.ReadTimeout, &h.WriteTimeout, &h.IdleTimeout, &h.ShutdownTimeout} {
		if *d < minTimeout {
			*d = minTimeout
		}
	}
}
