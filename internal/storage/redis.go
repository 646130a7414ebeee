package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps each key under <namespace>:state:<key>. Values have
// no expiration; the store lives as long as the shopper cares to keep it.
type RedisStorage struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStorage(redisClient *redis.Client, namespace string) *RedisStorage {
	return &RedisStorage{
		redisClient: redisClient,
		keyPrefix:   namespace + ":state:",
	}
}

func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // nothing saved yet
		}
		return nil, false, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return val, true, nil
}

func (s *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
