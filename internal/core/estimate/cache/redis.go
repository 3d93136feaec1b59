package cache

import (
	"context"
	"fmt"

	"calorie-estimator/internal/core/estimate"
	"calorie-estimator/internal/infrastructure/config"
	"calorie-estimator/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore redis-backed result cache, selected by the cache backend setting
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore connects to redis and returns the store.
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	if !cfg.Enabled {
		return &RedisStore{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached result for a meal text, or an error on a miss.
func (s *RedisStore) Get(ctx context.Context, mealText string) (*estimate.Result, error) {
	if s.client == nil {
		return nil, common.ErrCacheDisabled
	}

	key := NormalizeKey(mealText)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return nil, common.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached result: %w", err)
	}

	var result estimate.Result
	if err := common.ParseJSONBytes(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	common.LogCacheHit("redis", key)
	return &result, nil
}

// Set stores an estimate result under its normalized meal-text key.
func (s *RedisStore) Set(ctx context.Context, mealText string, result *estimate.Result) error {
	if s.client == nil {
		return nil
	}

	data, err := common.ToJSON(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := s.client.Set(ctx, NormalizeKey(mealText), data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cached result: %w", err)
	}

	return nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
