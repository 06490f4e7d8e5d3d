package auth

// Package auth contains domain-level types for request identity resolution.
// It is pure and free of framework/adapter concerns.

import apperrors "github.com/target/ticketdesk-api/internal/errors"

// CookieName is the name of the cookie carrying the auth token.
const CookieName = "auth-token"

// Ctx is the resolved principal of a single request.
// It is a value type; copies handed to handlers cannot affect other readers.
type Ctx struct {
	userID uint64
}

// NewCtx constructs a Ctx for the given user id.
func NewCtx(userID uint64) Ctx {
	return Ctx{userID: userID}
}

// UserID returns the id of the authenticated user.
func (c Ctx) UserID() uint64 { return c.userID }

// Outcome is the one-shot result of resolving a request's auth token:
// either a Ctx or the typed failure that prevented resolution.
type Outcome struct {
	ctx Ctx
	err *apperrors.AppError
}

// Resolved returns a successful outcome.
func Resolved(ctx Ctx) Outcome {
	return Outcome{ctx: ctx}
}

// Failed returns a failed outcome. err should be NoToken or MalformedToken.
func Failed(err *apperrors.AppError) Outcome {
	if err == nil {
		err = apperrors.Internal("auth outcome failed without cause")
	}
	return Outcome{err: err}
}

// Ctx returns the resolved identity or the failure.
func (o Outcome) Ctx() (Ctx, error) {
	if o.err != nil {
		return Ctx{}, o.err
	}
	return o.ctx, nil
}

// Err returns the failure, or nil when the outcome is resolved.
func (o Outcome) Err() *apperrors.AppError { return o.err }

// OK reports whether the outcome carries an identity.
func (o Outcome) OK() bool { return o.err == nil }
