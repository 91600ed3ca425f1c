package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps the override payload under a single Redis key.
type RedisSlot struct {
	client *redis.Client
	key    string
}

func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *RedisSlot) Save(ctx context.Context, payload []byte) error {
	return s.client.Set(ctx, s.key, payload, 0).Err()
}
