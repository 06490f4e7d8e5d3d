package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/target/ticketdesk-api/internal/data/pgxutil"
	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

const ticketColumns = "id, creator_id, title"

// TicketRepo stores tickets in Postgres. Deleted rows keep their id and get a
// deleted_at timestamp, so the identity column never hands out a used id again.
type TicketRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTicketRepo creates a new TicketRepo instance with the given database connection.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTicketRepoWithTimeProvider creates a TicketRepo with a custom TimeProvider (useful for testing).
func NewTicketRepoWithTimeProvider(db *sql.DB, timeProvider TimeProvider) *TicketRepo {
	return &TicketRepo{DB: db, timeProvider: timeProvider}
}

// Create inserts a ticket and returns it with its assigned id.
func (r *TicketRepo) Create(ctx context.Context, creatorID uint64, in model.TicketForCreate) (model.Ticket, error) {
	if creatorID > math.MaxInt64 {
		return model.Ticket{}, apperrors.ValidationField("creator_id", "creator id out of range")
	}

	var out model.Ticket
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var err error
		out, err = insertTicket(ctx, conn, creatorID, in)
		return err
	})
	if err != nil {
		return model.Ticket{}, fmt.Errorf("create ticket: %w", apperrors.MapDBError(err))
	}
	return out, nil
}

// CreateBatch inserts tickets for one creator in a single transaction.
// Either every ticket is stored or none is.
func (r *TicketRepo) CreateBatch(
	ctx context.Context,
	creatorID uint64,
	in []model.TicketForCreate,
) ([]model.Ticket, error) {
	if creatorID > math.MaxInt64 {
		return nil, apperrors.ValidationField("creator_id", "creator id out of range")
	}

	out := make([]model.Ticket, 0, len(in))
	err := pgxutil.WithPgxTx(ctx, r.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, t := range in {
			created, err := insertTicket(ctx, tx, creatorID, t)
			if err != nil {
				return err
			}
			out = append(out, created)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create tickets: %w", apperrors.MapDBError(err))
	}
	return out, nil
}

// queryer is satisfied by both *pgx.Conn and pgx.Tx.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func insertTicket(ctx context.Context, q queryer, creatorID uint64, in model.TicketForCreate) (model.Ticket, error) {
	rows, err := q.Query(ctx,
		`INSERT INTO tickets (creator_id, title) VALUES ($1, $2) RETURNING `+ticketColumns,
		int64(creatorID), in.Title,
	)
	if err != nil {
		return model.Ticket{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Ticket])
}

// List returns live tickets ordered by id.
func (r *TicketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	var out []model.Ticket
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+ticketColumns+` FROM tickets WHERE deleted_at IS NULL ORDER BY id`,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Ticket])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", apperrors.MapDBError(err))
	}
	if out == nil {
		out = []model.Ticket{}
	}
	return out, nil
}

// Delete tombstones the ticket and returns it. Missing or already deleted ids
// yield a ResourceNotFound error carrying the id.
func (r *TicketRepo) Delete(ctx context.Context, id uint64) (model.Ticket, error) {
	if id > math.MaxInt64 {
		return model.Ticket{}, apperrors.ResourceNotFound(id)
	}

	var out model.Ticket
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`UPDATE tickets SET deleted_at = $2
			 WHERE id = $1 AND deleted_at IS NULL
			 RETURNING `+ticketColumns,
			int64(id), r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Ticket])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Ticket{}, apperrors.ResourceNotFound(id)
	}
	if err != nil {
		return model.Ticket{}, fmt.Errorf("delete ticket %d: %w", id, apperrors.MapDBError(err))
	}
	return out, nil
}
