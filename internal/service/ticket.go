package service

import (
	"context"
	"fmt"
	"log/slog"

	domainauth "github.com/target/ticketdesk-api/internal/domain/auth"
	"github.com/target/ticketdesk-api/internal/domain/model"
	"github.com/target/ticketdesk-api/internal/ports"
)

// TicketServiceOptions groups dependencies for TicketService.
type TicketServiceOptions struct {
	Store  ports.TicketStore
	Logger *slog.Logger // optional
}

// TicketService orchestrates ticket operations on behalf of an authenticated caller.
type TicketService struct {
	store  ports.TicketStore
	logger *slog.Logger
}

// NewTicketService constructs a new TicketService.
func NewTicketService(opts TicketServiceOptions) *TicketService {
	if opts.Store == nil {
		panic("ticket service: Store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TicketService{store: opts.Store, logger: logger.With("component", "ticket_service")}
}

// Create validates the payload and stores a ticket owned by the caller.
func (s *TicketService) Create(
	ctx context.Context,
	caller domainauth.Ctx,
	in model.TicketForCreate,
) (model.Ticket, error) {
	if err := in.Validate(); err != nil {
		return model.Ticket{}, err
	}

	t, err := s.store.Create(ctx, caller.UserID(), in)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}
	s.logger.DebugContext(ctx, "ticket created", "ticket_id", t.ID, "user_id", caller.UserID())
	return t, nil
}

// List returns every live ticket. Tickets are visible to all authenticated users.
func (s *TicketService) List(ctx context.Context, _ domainauth.Ctx) ([]model.Ticket, error) {
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// Delete tombstones a ticket and returns it.
func (s *TicketService) Delete(ctx context.Context, caller domainauth.Ctx, id uint64) (model.Ticket, error) {
	t, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("delete ticket: %w", err)
	}
	s.logger.DebugContext(ctx, "ticket deleted", "ticket_id", id, "user_id", caller.UserID())
	return t, nil
}
