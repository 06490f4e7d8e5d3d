package httpx

import (
	"context"

	"github.com/google/uuid"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// requestStateKey is an unexported context key type to avoid collisions across packages.
type requestStateKey struct{}

// RequestState is the per-request scratch space shared by the middleware chain.
// It is owned by a single request and read/written sequentially, so it carries no lock.
type RequestState struct {
	reqID    uuid.UUID
	outcome  domainauth.Outcome
	resolved bool
	marker   *apperrors.AppError
	mapped   bool
}

// newRequestState creates state with a fresh correlation id.
func newRequestState() *RequestState {
	return &RequestState{reqID: uuid.New()}
}

// withRequestState returns a child context carrying st.
func withRequestState(ctx context.Context, st *RequestState) context.Context {
	return context.WithValue(ctx, requestStateKey{}, st)
}

// RequestStateFrom returns the request state and a boolean indicating presence.
func RequestStateFrom(ctx context.Context) (*RequestState, bool) {
	st, ok := ctx.Value(requestStateKey{}).(*RequestState)
	return st, ok && st != nil
}

// RequestID returns the correlation id of the request.
func (s *RequestState) RequestID() string { return s.reqID.String() }

// SetOutcome publishes the auth outcome. The first call wins; later calls are
// ignored and report false.
func (s *RequestState) SetOutcome(o domainauth.Outcome) bool {
	if s.resolved {
		return false
	}
	s.outcome = o
	s.resolved = true
	return true
}

// Outcome returns the published auth outcome, if any.
func (s *RequestState) Outcome() (domainauth.Outcome, bool) {
	return s.outcome, s.resolved
}

// Fail attaches err as the error marker of the response. Only the first
// marker is kept.
func (s *RequestState) Fail(err error) {
	if err == nil || s.marker != nil {
		return
	}
	s.marker = apperrors.As(err)
}

// Marker returns the attached error marker, or nil.
func (s *RequestState) Marker() *apperrors.AppError { return s.marker }

// takeMarker returns the marker and detaches it so it is consumed once.
func (s *RequestState) takeMarker() *apperrors.AppError {
	m := s.marker
	s.marker = nil
	return m
}
