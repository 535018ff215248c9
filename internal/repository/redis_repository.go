package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStorage stores values as plain Redis strings without expiry.
func NewRedisStorage(rdb *redis.Client, prefix string) Storage {
	return &redisStorage{rdb: rdb, prefix: prefix}
}

func (s *redisStorage) key(k string) string { return s.prefix + k }

func (s *redisStorage) Read(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return raw, nil
}

func (s *redisStorage) Write(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
