package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
	"github.com/target/ticketdesk-api/internal/ports"
)

// placeholderSignature is written into issued tokens. Signatures are carried but never verified.
const placeholderSignature = "sign"

// defaultTokenTTL is used when AuthServiceOptions.TokenTTL is zero.
const defaultTokenTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Verifier ports.CredentialVerifier
	TokenTTL time.Duration    // optional
	Now      func() time.Time // optional, for tests
}

// AuthService checks login credentials and issues auth tokens.
type AuthService struct {
	verifier ports.CredentialVerifier
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Verifier == nil {
		panic("auth service: Verifier is required")
	}
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{verifier: opts.Verifier, ttl: ttl, now: now}
}

// LoginResult carries the token to set on the client.
type LoginResult struct {
	Token     domainauth.Token
	ExpiresAt time.Time
}

// Login verifies the credentials and returns a token for the matching user.
// A credentials mismatch surfaces as the verifier's LoginFail error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperrors.LoginFail()
	}

	userID, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}

	expiresAt := s.now().Add(s.ttl).UTC()
	return &LoginResult{
		Token: domainauth.Token{
			UserID:     userID,
			Expiration: strconv.FormatInt(expiresAt.Unix(), 10),
			Signature:  placeholderSignature,
		},
		ExpiresAt: expiresAt,
	}, nil
}

// TokenTTL returns the lifetime given to issued tokens.
func (s *AuthService) TokenTTL() time.Duration { return s.ttl }
