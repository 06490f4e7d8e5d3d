package devauth

// Package devauth provides a simple, config-driven CredentialVerifier for local development.

import (
	"context"
	"crypto/subtle"
	"errors"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// Config controls the dev credential check.
// Username and Password are required; UserID is the id issued on success.
type Config struct {
	Username string
	Password string
	UserID   uint64
}

// Provider implements ports.CredentialVerifier against a single configured account.
// It does not distinguish an unknown username from a wrong password.
type Provider struct {
	username []byte
	password []byte
	userID   uint64
}

// NewProvider constructs a dev credential verifier from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Username == "" {
		return nil, errors.New("dev auth: Username is required")
	}
	if cfg.Password == "" {
		return nil, errors.New("dev auth: Password is required")
	}
	return &Provider{
		username: []byte(cfg.Username),
		password: []byte(cfg.Password),
		userID:   cfg.UserID,
	}, nil
}

// Verify returns the configured user id when both username and password match.
func (p *Provider) Verify(_ context.Context, username, password string) (uint64, error) {
	userOK := subtle.ConstantTimeCompare(p.username, []byte(username))
	passOK := subtle.ConstantTimeCompare(p.password, []byte(password))
	if userOK&passOK != 1 {
		return 0, apperrors.LoginFail()
	}
	return p.userID, nil
}
