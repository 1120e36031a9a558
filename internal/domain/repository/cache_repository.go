package repository

import (
	"context"
	"time"

	"github.com/route-optimizer/internal/domain"
)

// CacheRepository defines cache access methods
type CacheRepository interface {
	// Get fetches raw bytes by key; nil,nil on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores raw bytes under key with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present
	Exists(ctx context.Context, key string) (bool, error)

	// GetRoute fetches a cached route; nil,nil on a miss
	GetRoute(ctx context.Context, key string) (*domain.RouteGeometry, error)

	// SetRoute caches a selected route
	SetRoute(ctx context.Context, key string, route *domain.RouteGeometry, ttl time.Duration) error

	// GetPlaces fetches cached geocoding results; nil,nil on a miss
	GetPlaces(ctx context.Context, key string) ([]domain.Place, error)

	// SetPlaces caches geocoding results
	SetPlaces(ctx context.Context, key string, places []domain.Place, ttl time.Duration) error

	// GetEnvironment fetches the cached environment snapshot; nil,nil on a miss
	GetEnvironment(ctx context.Context) (*domain.EnvironmentSnapshot, error)

	// SetEnvironment caches the current environment snapshot
	SetEnvironment(ctx context.Context, env *domain.EnvironmentSnapshot, ttl time.Duration) error
}
