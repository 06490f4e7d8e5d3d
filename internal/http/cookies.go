package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
)

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// setAuthCookie writes the auth token cookie valid until expiresAt.
func setAuthCookie(w http.ResponseWriter, r *http.Request, domain string, tok domainauth.Token, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     domainauth.CookieName,
		Value:    tok.String(),
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
}

// clearAuthCookie expires the auth token cookie on the client.
func clearAuthCookie(w http.ResponseWriter, r *http.Request, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     domainauth.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
