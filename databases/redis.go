package databases

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each key as a plain redis string
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a store talking to the redis server at addr
func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client}
}

// Ping checks the connection
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get implements KeyValueStore
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Put implements KeyValueStore. Keys never expire.
func (r *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Close closes the client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
