package kvstore

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisGetter is the subset of redis.UniversalClient used by RedisStore.
type RedisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore reads descriptors stored as plain string values.
type RedisStore struct {
	client RedisGetter
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client RedisGetter) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient builds a universal client (single node or cluster,
// depending on the number of addresses).
func NewRedisClient(cfg RedisConfig) redis.UniversalClient {
	opts := &redis.UniversalOptions{
		Addrs:    cfg.Addresses,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewUniversalClient(opts)
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Record, error) {
	v, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: redis get %s: %w", key, err)
	}
	return &Record{Key: key, Value: v}, nil
}
