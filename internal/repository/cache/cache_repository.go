package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

const environmentKey = "environment:current"

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

// GetRoute fetches a cached route; nil,nil on a miss
func (r *cacheRepository) GetRoute(ctx context.Context, key string) (*domain.RouteGeometry, error) {
	data, err := r.Get(ctx, key)
	if err != nil || data == nil {
		return nil, err
	}

	var route domain.RouteGeometry
	if err := json.Unmarshal(data, &route); err != nil {
		r.logger.Error("Failed to unmarshal route from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal route: %w", err)
	}

	return &route, nil
}

// SetRoute caches a selected route
func (r *cacheRepository) SetRoute(ctx context.Context, key string, route *domain.RouteGeometry, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		r.logger.Error("Failed to marshal route", zap.Error(err))
		return fmt.Errorf("marshal route: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}

// GetPlaces fetches cached geocoding results; nil,nil on a miss
func (r *cacheRepository) GetPlaces(ctx context.Context, key string) ([]domain.Place, error) {
	data, err := r.Get(ctx, key)
	if err != nil || data == nil {
		return nil, err
	}

	var places []domain.Place
	if err := json.Unmarshal(data, &places); err != nil {
		r.logger.Error("Failed to unmarshal places from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}

	return places, nil
}

// SetPlaces caches geocoding results
func (r *cacheRepository) SetPlaces(ctx context.Context, key string, places []domain.Place, ttl time.Duration) error {
	data, err := json.Marshal(places)
	if err != nil {
		r.logger.Error("Failed to marshal places", zap.Error(err))
		return fmt.Errorf("marshal places: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}

// GetEnvironment fetches the cached environment snapshot; nil,nil on a miss
func (r *cacheRepository) GetEnvironment(ctx context.Context) (*domain.EnvironmentSnapshot, error) {
	data, err := r.Get(ctx, environmentKey)
	if err != nil || data == nil {
		return nil, err
	}

	var env domain.EnvironmentSnapshot
	if err := json.Unmarshal(data, &env); err != nil {
		r.logger.Error("Failed to unmarshal environment from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal environment: %w", err)
	}

	return &env, nil
}

// SetEnvironment caches the current environment snapshot
func (r *cacheRepository) SetEnvironment(ctx context.Context, env *domain.EnvironmentSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(env)
	if err != nil {
		r.logger.Error("Failed to marshal environment", zap.Error(err))
		return fmt.Errorf("marshal environment: %w", err)
	}

	return r.Set(ctx, environmentKey, data, ttl)
}
