package ports_test

import (
	"testing"

	"github.com/target/ticketdesk-api/internal/adapters/devauth"
	"github.com/target/ticketdesk-api/internal/adapters/memstore"
	"github.com/target/ticketdesk-api/internal/mocks"
	mockauth "github.com/target/ticketdesk-api/internal/mocks/auth"
	"github.com/target/ticketdesk-api/internal/ports"
)

// This test only verifies that adapters and mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.CredentialVerifier = (*devauth.Provider)(nil)
	var _ ports.CredentialVerifier = (*mockauth.MockCredentialVerifier)(nil)
	var _ ports.TicketStore = (*memstore.TicketStore)(nil)
	var _ ports.TicketStore = (*mocks.MockTicketStore)(nil)
	var _ ports.NutritionAnalyzer = (*mocks.MockNutritionAnalyzer)(nil)
}
