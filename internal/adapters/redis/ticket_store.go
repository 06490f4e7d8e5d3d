package redis

// Package redis provides Redis-based adapters for the ticketdesk service.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/target/ticketdesk-api/internal/domain/model"
	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// DefaultTicketKey is the list key holding ticket slots.
const DefaultTicketKey = "ticketdesk:tickets"

// tombstone marks a deleted slot. Live slots always hold a JSON object.
const tombstone = ""

// deleteScript tombstones a slot atomically and returns its previous value.
// Missing or already tombstoned slots return nil.
var deleteScript = redis.NewScript(`
local v = redis.call('LINDEX', KEYS[1], ARGV[1])
if (not v) or v == '' then
  return false
end
redis.call('LSET', KEYS[1], ARGV[1], '')
return v
`)

// slot is the stored form of a ticket; the id is the list index.
type slot struct {
	CreatorID uint64 `json:"cid"`
	Title     string `json:"title"`
}

// TicketStore keeps tickets in a Redis list. The list index is the ticket id,
// so RPUSH assigns ids and deletion overwrites the slot with a tombstone.
type TicketStore struct {
	client redis.UniversalClient
	key    string
}

// NewTicketStore creates a Redis-backed ticket store using DefaultTicketKey.
func NewTicketStore(client redis.UniversalClient) *TicketStore {
	return NewTicketStoreWithKey(client, DefaultTicketKey)
}

// NewTicketStoreWithKey creates a Redis ticket store on a custom list key.
func NewTicketStoreWithKey(client redis.UniversalClient, key string) *TicketStore {
	return &TicketStore{client: client, key: key}
}

func (s *TicketStore) Create(ctx context.Context, creatorID uint64, in model.TicketForCreate) (model.Ticket, error) {
	data, err := json.Marshal(slot{CreatorID: creatorID, Title: in.Title})
	if err != nil {
		return model.Ticket{}, fmt.Errorf("marshal ticket: %w", err)
	}

	n, err := s.client.RPush(ctx, s.key, data).Result()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("redis rpush: %w", err)
	}

	return model.Ticket{ID: uint64(n - 1), CreatorID: creatorID, Title: in.Title}, nil
}

func (s *TicketStore) List(ctx context.Context) ([]model.Ticket, error) {
	values, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}

	out := make([]model.Ticket, 0, len(values))
	for i, v := range values {
		if v == tombstone {
			continue
		}
		t, decodeErr := decodeSlot(uint64(i), v)
		if decodeErr != nil {
			return nil, decodeErr
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TicketStore) Delete(ctx context.Context, id uint64) (model.Ticket, error) {
	if id > math.MaxInt64 {
		return model.Ticket{}, apperrors.ResourceNotFound(id)
	}

	v, err := deleteScript.Run(ctx, s.client, []string{s.key}, strconv.FormatUint(id, 10)).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Ticket{}, apperrors.ResourceNotFound(id)
		}
		return model.Ticket{}, fmt.Errorf("redis delete ticket: %w", err)
	}

	return decodeSlot(id, v)
}

func decodeSlot(id uint64, v string) (model.Ticket, error) {
	var sl slot
	if err := json.Unmarshal([]byte(v), &sl); err != nil {
		return model.Ticket{}, fmt.Errorf("unmarshal ticket %d: %w", id, err)
	}
	return model.Ticket{ID: id, CreatorID: sl.CreatorID, Title: sl.Title}, nil
}
