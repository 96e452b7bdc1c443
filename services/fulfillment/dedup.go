package fulfillment

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	dedupPrefix = "fulfillment:"
	dedupTTL    = 30 * 24 * time.Hour
)

// Store records which checkout sessions have already been fulfilled.
// Stripe delivers webhooks at least once; without this, a redelivery
// would create a second calendar event and confirmation email.
type Store interface {
	// MarkFulfilled claims the session id. It returns true when this is
	// the first claim, false when the session was already fulfilled.
	MarkFulfilled(ctx context.Context, sessionID string) (bool, error)
}

// RedisStore implements Store on a Redis SETNX with expiry.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) MarkFulfilled(ctx context.Context, sessionID string) (bool, error) {
	return s.Client.SetNX(ctx, dedupPrefix+sessionID, "fulfilled", dedupTTL).Result()
}
