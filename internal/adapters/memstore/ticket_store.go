// Package memstore provides an in-process ticket store for development and tests.
package memstore

import (
	"context"
	"sync"

	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// TicketStore keeps tickets in a slice of slots. Deleting a ticket leaves a
// nil tombstone so ids stay stable. The mutex is held for a single
// append/read/tombstone only.
type TicketStore struct {
	mu    sync.Mutex
	slots []*model.Ticket
}

// NewTicketStore creates an empty in-memory ticket store.
func NewTicketStore() *TicketStore {
	return &TicketStore{}
}

// Create appends a ticket; its id is the number of slots before the insert.
func (s *TicketStore) Create(_ context.Context, creatorID uint64, in model.TicketForCreate) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Ticket{
		ID:        uint64(len(s.slots)),
		CreatorID: creatorID,
		Title:     in.Title,
	}
	s.slots = append(s.slots, &t)

	return t, nil
}

// List returns live tickets in insertion order.
func (s *TicketStore) List(_ context.Context) ([]model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Ticket, 0, len(s.slots))
	for _, t := range s.slots {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out, nil
}

// Delete tombstones the slot and returns the ticket that occupied it.
func (s *TicketStore) Delete(_ context.Context, id uint64) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id >= uint64(len(s.slots)) || s.slots[id] == nil {
		return model.Ticket{}, apperrors.ResourceNotFound(id)
	}

	t := *s.slots[id]
	s.slots[id] = nil
	return t, nil
}
