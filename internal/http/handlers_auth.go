package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/target/ticketdesk-api/internal/service"
)

// AuthServiceInterface defines the auth operations used by the handlers.
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
}

// AuthHandlers provides HTTP handlers for login and logoff.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResult struct {
	Success bool `json:"success"`
}

type logoffPayload struct {
	Logoff bool `json:"logoff"`
}

type logoffResult struct {
	LoggedOff bool `json:"logged_off"`
}

type resultEnvelope[T any] struct {
	Result T `json:"result"`
}

// Login checks the credentials and sets the auth cookie.
// POST /api/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginPayload
	if !DecodeJSON(w, r, &in) {
		return
	}

	res, err := h.Svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	setAuthCookie(w, r, h.CookieDomain, res.Token, res.ExpiresAt)
	h.logger().DebugContext(r.Context(), "login succeeded", "user_id", res.Token.UserID)
	WriteJSON(w, http.StatusOK, resultEnvelope[loginResult]{Result: loginResult{Success: true}})
}

// Logoff clears the auth cookie when the payload asks for it.
// POST /api/logoff.
func (h *AuthHandlers) Logoff(w http.ResponseWriter, r *http.Request) {
	var in logoffPayload
	if !DecodeJSON(w, r, &in) {
		return
	}

	if in.Logoff {
		clearAuthCookie(w, r, h.CookieDomain)
	}
	WriteJSON(w, http.StatusOK, resultEnvelope[logoffResult]{Result: logoffResult{LoggedOff: in.Logoff}})
}
