package ports

import (
	"context"

	"github.com/target/ticketdesk-api/internal/domain/model"
)

// TicketStore persists tickets in slot-addressed form.
//
// Create assigns the next slot index as the id; ids are never reused.
// Delete tombstones a slot and returns the removed ticket, or a
// ResourceNotFound error when the slot is empty or out of range.
// List returns live tickets in insertion order.
// Implementations must be safe for concurrent use.
type TicketStore interface {
	Create(ctx context.Context, creatorID uint64, in model.TicketForCreate) (model.Ticket, error)
	List(ctx context.Context) ([]model.Ticket, error)
	Delete(ctx context.Context, id uint64) (model.Ticket, error)
}
