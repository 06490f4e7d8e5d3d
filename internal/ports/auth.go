package ports

// Package ports defines interfaces (hexagonal ports) for the service.
// Implementations live in internal/adapters and internal/data; orchestration in internal/service.

import (
	"context"
)

// CredentialVerifier checks a username/password pair and returns the matching user id.
// Implementations must not reveal whether the username or the password was wrong.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (userID uint64, err error)
}
