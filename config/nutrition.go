package config

import (
	"strings"
	"time"
)

// NutritionConfig configures the Gemini client behind /analyze-image.
// Without an API key the endpoint answers with a service error.
type NutritionConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL"    envDefault:"gemini-2.5-flash"`
	BaseURL string        `env:"GEMINI_BASE_URL"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT"  envDefault:"60s"`
}

// Sanitize trims values and restores the default timeout.
func (n *NutritionConfig) Sanitize() {
	n.APIKey = strings.TrimSpace(n.APIKey)
	n.Model = strings.TrimSpace(n.Model)
	n.BaseURL = strings.TrimSpace(n.BaseURL)
	if n.Timeout <= 0 {
		n.Timeout = 60 * time.Second
	}
}

// Enabled reports whether an API key is configured.
func (n NutritionConfig) Enabled() bool { return n.APIKey != "" }
