package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EventDedupStore implements ports.EventDedupStore using Redis SET NX.
type EventDedupStore struct {
	client *goredis.Client
	prefix string
}

// NewEventDedupStore creates a new Redis-backed event dedup store.
func NewEventDedupStore(client *goredis.Client) *EventDedupStore {
	return &EventDedupStore{
		client: client,
		prefix: "webhook:event:",
	}
}

// CheckAndSet atomically records the event id if unseen.
// Returns true if the event is new, false if it was already processed.
func (s *EventDedupStore) CheckAndSet(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	key := s.prefix + eventID
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, a prior delivery was processed
			return false, nil
		}
		return false, fmt.Errorf("redis event dedup check: %w", err)
	}
	return result == "OK", nil
}
