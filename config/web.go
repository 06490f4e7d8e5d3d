package config

import "strings"

// WebConfig points at the static files served under /pub/.
type WebConfig struct {
	Folder string `env:"SERVICE_WEB_FOLDER,required"`
}

// Sanitize trims the folder path.
func (w *WebConfig) Sanitize() {
	w.Folder = strings.TrimSpace(w.Folder)
}
