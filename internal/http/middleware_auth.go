package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// CtxResolverOptions configures CtxResolver.
type CtxResolverOptions struct {
	CookieDomain string
	Logger       *slog.Logger
}

// CtxResolver resolves the auth cookie into a domainauth.Outcome and publishes
// it on the request state. It never rejects a request. A malformed cookie is
// cleared on the response.
func CtxResolver(opts CtxResolverOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, ok := RequestStateFrom(r.Context())
			if !ok {
				st = newRequestState()
				r = r.WithContext(withRequestState(r.Context(), st))
			}

			outcome := resolveOutcome(r)
			if !st.SetOutcome(outcome) {
				logger.WarnContext(r.Context(), "auth outcome already published", "req_uuid", st.RequestID())
			}

			if err := outcome.Err(); err != nil && err.Code != apperrors.ErrCodeNoToken {
				clearAuthCookie(w, r, opts.CookieDomain)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveOutcome(r *http.Request) domainauth.Outcome {
	c, err := r.Cookie(domainauth.CookieName)
	if err != nil {
		return domainauth.Failed(apperrors.NoToken())
	}

	tok, err := domainauth.ParseToken(c.Value)
	if err != nil {
		return domainauth.Failed(apperrors.MalformedToken(err))
	}

	return domainauth.Resolved(domainauth.NewCtx(tok.UserID))
}

// RequireAuth returns a middleware that only forwards requests whose resolved
// outcome carries an identity. Otherwise the failure is attached as the
// response error and the handler is not run.
func RequireAuth(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := ctxFromRequest(r, logger); err != nil {
				WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CtxFromRequest returns a copy of the identity resolved for r. It fails with
// NoToken or MalformedToken from the published outcome, or with
// CtxNotInRequestState when CtxResolver did not run for r.
func CtxFromRequest(r *http.Request) (domainauth.Ctx, error) {
	return ctxFromRequest(r, slog.Default())
}

func ctxFromRequest(r *http.Request, logger *slog.Logger) (domainauth.Ctx, error) {
	st, ok := RequestStateFrom(r.Context())
	if !ok {
		return domainauth.Ctx{}, ctxNotInRequestState(r, logger, "")
	}
	outcome, resolved := st.Outcome()
	if !resolved {
		return domainauth.Ctx{}, ctxNotInRequestState(r, logger, st.RequestID())
	}
	return outcome.Ctx()
}

func ctxNotInRequestState(r *http.Request, logger *slog.Logger, reqID string) error {
	logger.ErrorContext(r.Context(), "auth ctx not in request state; route is missing CtxResolver",
		"req_uuid", reqID,
		"method", r.Method,
		"path", r.URL.Path)
	return apperrors.CtxNotInRequestState()
}
