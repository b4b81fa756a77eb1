package blobstore

import (
	"context"
	"fmt"
	"time"

	"github.com/NaveenSky123/manaraitubazaar/pkg/redis"
)

// redisCommands is the slice of the redis client this store relies on.
type redisCommands interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Redis persists blobs through a shared redis client. TTL of zero keeps
// entries until they are explicitly deleted.
type Redis struct {
	client redisCommands
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, string(value), r.ttl)
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key)
}
