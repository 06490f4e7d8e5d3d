package data

import (
	"context"
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
	"github.com/target/ticketdesk-api/internal/testutil"
)

func TestTicketRepo_IDStability(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewTicketRepo(db)
		ctx := context.Background()

		for i, title := range []string{"a", "b", "c"} {
			ticket, err := repo.Create(ctx, 1, model.TicketForCreate{Title: title})
			require.NoError(t, err)
			assert.Equal(t, uint64(i), ticket.ID)
		}

		deleted, err := repo.Delete(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "b", deleted.Title)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, uint64(0), list[0].ID)
		assert.Equal(t, uint64(2), list[1].ID)

		next, err := repo.Create(ctx, 1, model.TicketForCreate{Title: "d"})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), next.ID)
	})
}

func TestTicketRepo_DeleteNotFound(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		fixed := NewFixedTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		repo := NewTicketRepoWithTimeProvider(db, fixed)
		ctx := context.Background()

		_, err := repo.Delete(ctx, 42)
		assert.True(t, apperrors.IsNotFound(err), "got %v", err)

		created, err := repo.Create(ctx, 9, model.TicketForCreate{Title: "once"})
		require.NoError(t, err)
		_, err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = repo.Delete(ctx, created.ID)
		assert.True(t, apperrors.IsNotFound(err), "tombstoned ticket should not be deletable twice")

		_, err = repo.Delete(ctx, math.MaxUint64)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestTicketRepo_CreateBatch(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewTicketRepo(db)
		ctx := context.Background()

		created, err := repo.CreateBatch(ctx, 3, []model.TicketForCreate{{Title: "x"}, {Title: "y"}})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, uint64(3), created[1].CreatorID)

		_, err = repo.CreateBatch(ctx, 3, []model.TicketForCreate{{Title: "ok"}, {Title: ""}})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err), "empty title should violate the check constraint")

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2, "failed batch must not leave partial rows")
	})
}

func TestTicketRepo_ListEmpty(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		list, err := NewTicketRepo(db).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}
