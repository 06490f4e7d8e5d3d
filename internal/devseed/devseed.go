package devseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/target/ticketdesk-api/internal/domain/model"
	"github.com/target/ticketdesk-api/internal/ports"
)

// BatchCreator is implemented by stores that can insert several tickets atomically.
type BatchCreator interface {
	CreateBatch(ctx context.Context, creatorID uint64, in []model.TicketForCreate) ([]model.Ticket, error)
}

// Options configures a development seeding run.
type Options struct {
	Store     ports.TicketStore
	CreatorID uint64
	Tickets   []model.TicketForCreate // optional; DefaultTickets when empty
	Logger    *slog.Logger            // optional
}

// DefaultTickets returns the demo tickets created on an empty store.
func DefaultTickets() []model.TicketForCreate {
	return []model.TicketForCreate{
		{Title: "Ticket AAA"},
		{Title: "Ticket BBB"},
	}
}

// Run seeds demo tickets when the store has no live tickets and reports how
// many were created. A store that already holds tickets is left untouched.
func Run(ctx context.Context, opts Options) (int, error) {
	if opts.Store == nil {
		return 0, errors.New("devseed: store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seeds := opts.Tickets
	if len(seeds) == 0 {
		seeds = DefaultTickets()
	}

	existing, err := opts.Store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tickets: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "skipping ticket seed", "existing", len(existing))
		return 0, nil
	}

	if batch, ok := opts.Store.(BatchCreator); ok {
		created, batchErr := batch.CreateBatch(ctx, opts.CreatorID, seeds)
		if batchErr != nil {
			return 0, fmt.Errorf("seed tickets: %w", batchErr)
		}
		logger.InfoContext(ctx, "seeded tickets", "count", len(created))
		return len(created), nil
	}

	created := 0
	for _, t := range seeds {
		if _, err := opts.Store.Create(ctx, opts.CreatorID, t); err != nil {
			logger.WarnContext(ctx, "failed to seed ticket", "title", t.Title, "error", err)
			continue
		}
		created++
	}
	logger.InfoContext(ctx, "seeded tickets", "count", created)
	return created, nil
}
