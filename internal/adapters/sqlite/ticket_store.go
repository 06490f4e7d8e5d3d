package sqlite

// Package sqlite provides a file-backed ticket store on the pure Go SQLite driver.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// Config holds configuration for the SQLite ticket store.
type Config struct {
	// Path is the filesystem path to the SQLite database file.
	Path string
}

// TicketStore implements ports.TicketStore on SQLite. Ids are assigned as
// MAX(id)+1 over all rows, tombstones included, so they match slot indexes.
type TicketStore struct {
	db        *sql.DB
	writeLock sync.Mutex // the driver does not support concurrent writes
}

// Open opens (or creates) the database file and ensures the schema exists.
func Open(ctx context.Context, cfg Config) (*TicketStore, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping db: %w", err), db.Close())
	}

	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return nil, errors.Join(fmt.Errorf("set busy timeout: %w", err), db.Close())
	}

	if err = initializeDB(ctx, db); err != nil {
		return nil, errors.Join(fmt.Errorf("initialize db: %w", err), db.Close())
	}

	return &TicketStore{db: db}, nil
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tickets (
			id          INTEGER PRIMARY KEY,
			creator_id  INTEGER NOT NULL CHECK (creator_id >= 0),
			title       TEXT    NOT NULL CHECK (length(title) > 0),
			created_at  INTEGER NOT NULL,
			deleted_at  INTEGER
		)
	`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *TicketStore) Create(ctx context.Context, creatorID uint64, in model.TicketForCreate) (model.Ticket, error) {
	if creatorID > math.MaxInt64 {
		return model.Ticket{}, apperrors.ValidationField("creator_id", "creator id out of range")
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tickets (id, creator_id, title, created_at)
		SELECT COALESCE(MAX(id) + 1, 0), ?, ?, ? FROM tickets
		RETURNING id`,
		int64(creatorID), in.Title, time.Now().Unix(),
	).Scan(&id)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("insert ticket: %w", mapError(err))
	}

	return model.Ticket{ID: uint64(id), CreatorID: creatorID, Title: in.Title}, nil
}

func (s *TicketStore) List(ctx context.Context) ([]model.Ticket, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, creator_id, title FROM tickets WHERE deleted_at IS NULL ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", mapError(err))
	}
	defer rows.Close()

	out := []model.Ticket{}
	for rows.Next() {
		var id, creatorID int64
		var t model.Ticket
		if err = rows.Scan(&id, &creatorID, &t.Title); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.ID, t.CreatorID = uint64(id), uint64(creatorID)
		out = append(out, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", mapError(err))
	}
	return out, nil
}

func (s *TicketStore) Delete(ctx context.Context, id uint64) (model.Ticket, error) {
	if id > math.MaxInt64 {
		return model.Ticket{}, apperrors.ResourceNotFound(id)
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	var creatorID int64
	t := model.Ticket{ID: id}
	err := s.db.QueryRowContext(ctx, `
		UPDATE tickets SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
		RETURNING creator_id, title`,
		time.Now().Unix(), int64(id),
	).Scan(&creatorID, &t.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ticket{}, apperrors.ResourceNotFound(id)
	}
	if err != nil {
		return model.Ticket{}, fmt.Errorf("delete ticket %d: %w", id, mapError(err))
	}
	t.CreatorID = uint64(creatorID)
	return t, nil
}

// Ping verifies the database file is still reachable.
func (s *TicketStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *TicketStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

func mapError(err error) error {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return err
	}
	switch liteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid data")
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return apperrors.Wrap(err, apperrors.ErrCodeConflict, "value already exists")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "database error")
	}
}
