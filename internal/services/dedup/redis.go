package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "messenger-webhook:mid:"

// RedisStore shares seen ids between replicas.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to addr and checks the connection.
func NewRedisStore(ctx context.Context, addr, password string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Seen records key and reports whether it was already recorded.
func (s *RedisStore) Seen(ctx context.Context, key string) (bool, error) {
	set, err := s.client.SetNX(ctx, redisKeyPrefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record message id: %w", err)
	}
	return !set, nil
}

// Close releases the redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
