package cache

import (
	"context"

	"calorie-estimator/internal/core/estimate"
	"calorie-estimator/internal/infrastructure/config"
)

// Store common surface of the result-cache backends
type Store interface {
	Get(ctx context.Context, mealText string) (*estimate.Result, error)
	Set(ctx context.Context, mealText string, result *estimate.Result) error
	Close() error
}

// NewStore selects the cache backend from config. Returns nil when the cache
// is disabled; callers treat a nil store as a permanent miss.
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Backend == "redis" {
		return NewRedisStore(&cfg.Cache)
	}
	return NewManager(cfg), nil
}
