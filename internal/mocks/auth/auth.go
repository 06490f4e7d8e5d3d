package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
	"github.com/target/ticketdesk-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.CredentialVerifier = (*MockCredentialVerifier)(nil)

// MockCredentialVerifier accepts a single fixed credential pair unless VerifyFunc is set.
type MockCredentialVerifier struct {
	VerifyFunc func(ctx context.Context, username, password string) (uint64, error)

	Username string
	Password string
	UserID   uint64

	mu    sync.Mutex
	calls []string
}

// NewMockCredentialVerifier creates a verifier accepting demo/123 as user 1.
func NewMockCredentialVerifier() *MockCredentialVerifier {
	return &MockCredentialVerifier{
		Username: "demo",
		Password: "123",
		UserID:   1,
	}
}

func (m *MockCredentialVerifier) Verify(ctx context.Context, username, password string) (uint64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, username)
	m.mu.Unlock()

	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, username, password)
	}
	if username != m.Username || password != m.Password {
		return 0, apperrors.LoginFail()
	}
	return m.UserID, nil
}

// Calls returns the usernames Verify was called with, in order.
func (m *MockCredentialVerifier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
