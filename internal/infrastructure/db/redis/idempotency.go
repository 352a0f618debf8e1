package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore maps a client-supplied Idempotency-Key to the paste it
// created. Keys are scoped per author.
// Key format: idem:paste:<author_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. ttl <= 0 uses a day.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Lookup returns the paste id remembered for key, or "" when there is none.
func (s *IdempotencyStore) Lookup(ctx context.Context, authorID, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(authorID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records pasteID under key. The first writer wins.
func (s *IdempotencyStore) Remember(ctx context.Context, authorID, key, pasteID string) error {
	if err := s.client.SetNX(ctx, s.key(authorID, key), pasteID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(authorID, key string) string {
	return fmt.Sprintf("idem:paste:%s:%s", authorID, key)
}
