package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps settings as fields of a single Redis hash. Redis has no
// null values, so a found field always carries a value.
type RedisStore struct {
	client  redis.Cmdable
	hashKey string
}

// NewRedisStore uses the hash at hashKey.
func NewRedisStore(client redis.Cmdable, hashKey string) *RedisStore {
	return &RedisStore{client: client, hashKey: hashKey}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Setting, error) {
	val, err := s.client.HGet(ctx, s.hashKey, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read setting %q from redis: %w", key, err)
	}
	return &Setting{Key: key, Value: &val}, nil
}

func (s *RedisStore) Upsert(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.hashKey, key, value).Err(); err != nil {
		return fmt.Errorf("failed to write setting %q to redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]Setting, error) {
	all, err := s.client.HGetAll(ctx, s.hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list settings from redis: %w", err)
	}

	rows := make([]Setting, 0, len(all))
	for k, v := range all {
		v := v
		rows = append(rows, Setting{Key: k, Value: &v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
