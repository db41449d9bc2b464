package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// addressKey rounds coordinates to 4 decimal places (~11m) so that nearby
// lookups share a cache entry.
func addressKey(lat, lon float64) string {
	return fmt.Sprintf("geo:reverse:%.4f:%.4f", lat, lon)
}

// GetAddress reads a cached reverse-geocode result.
func (r *cacheRepository) GetAddress(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	data, err := r.Get(ctx, addressKey(lat, lon))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var addr domain.Address
	if err := json.Unmarshal(data, &addr); err != nil {
		r.logger.Error("Failed to unmarshal cached address", zap.Error(err))
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}

	return &addr, nil
}

// SetAddress stores a reverse-geocode result.
func (r *cacheRepository) SetAddress(ctx context.Context, lat, lon float64, addr *domain.Address, ttl time.Duration) error {
	data, err := json.Marshal(addr)
	if err != nil {
		r.logger.Error("Failed to marshal address", zap.Error(err))
		return fmt.Errorf("marshal address: %w", err)
	}

	return r.Set(ctx, addressKey(lat, lon), data, ttl)
}
