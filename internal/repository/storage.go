package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/EnrichTheWorld/enrich-the-world-blog/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Storage is a key/value port with whole-value reads and writes.
// Reading a missing key returns (nil, nil).
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

type memoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage keeps values in process memory; nothing survives a restart.
func NewMemoryStorage() Storage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (s *memoryStorage) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *memoryStorage) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// RedisKeyPrefix namespaces application keys inside a shared Redis database.
const RedisKeyPrefix = "enrich:"

// NewStorage picks the backend named by STORAGE_DRIVER. db and rdb may be nil
// when the driver does not use them.
func NewStorage(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (Storage, error) {
	switch cfg.Storage.Driver {
	case "memory":
		log.Warn().Msg("Using in-memory storage, quiz history is lost on restart")
		return NewMemoryStorage(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("storage driver redis selected without a redis client")
		}
		return NewRedisStorage(rdb, RedisKeyPrefix), nil
	case "sqlite", "postgres", "":
		if db == nil {
			return nil, fmt.Errorf("storage driver %q selected without a database", cfg.Storage.Driver)
		}
		return NewGormStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
