package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRoutingRepo struct {
	routes []domain.RouteGeometry
	err    error
	calls  int
}

func (s *stubRoutingRepo) GetRoutes(_ context.Context, _, _ domain.Coordinate, _ bool) ([]domain.RouteGeometry, error) {
	s.calls++
	return s.routes, s.err
}

// memoryCache is a map-backed CacheRepository used instead of Redis.
type memoryCache struct {
	raw    map[string][]byte
	routes map[string]*domain.RouteGeometry
	places map[string][]domain.Place
	env    *domain.EnvironmentSnapshot
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		raw:    make(map[string][]byte),
		routes: make(map[string]*domain.RouteGeometry),
		places: make(map[string][]domain.Place),
	}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	return m.raw[key], nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.raw[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.raw, key)
	return nil
}

func (m *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.raw[key]
	return ok, nil
}

func (m *memoryCache) GetRoute(_ context.Context, key string) (*domain.RouteGeometry, error) {
	return m.routes[key], nil
}

func (m *memoryCache) SetRoute(_ context.Context, key string, route *domain.RouteGeometry, _ time.Duration) error {
	m.routes[key] = route
	return nil
}

func (m *memoryCache) GetPlaces(_ context.Context, key string) ([]domain.Place, error) {
	return m.places[key], nil
}

func (m *memoryCache) SetPlaces(_ context.Context, key string, places []domain.Place, _ time.Duration) error {
	m.places[key] = places
	return nil
}

func (m *memoryCache) GetEnvironment(_ context.Context) (*domain.EnvironmentSnapshot, error) {
	return m.env, nil
}

func (m *memoryCache) SetEnvironment(_ context.Context, env *domain.EnvironmentSnapshot, _ time.Duration) error {
	m.env = env
	return nil
}

var (
	hanoiCenter = domain.Coordinate{Lat: 21.0285, Lon: 105.8542}
	hanoiWest   = domain.Coordinate{Lat: 21.0350, Lon: 105.8400}
)

func newTestRouteUseCase(routing *stubRoutingRepo) (*RouteUseCase, *memoryCache) {
	cache := newMemoryCache()
	return NewRouteUseCase(routing, cache, zap.NewNop(), 5*time.Minute, 20), cache
}

func TestAcquireRouteFallback(t *testing.T) {
	t.Run("upstream failure synthesizes a route", func(t *testing.T) {
		uc, _ := newTestRouteUseCase(&stubRoutingRepo{err: apperrors.ErrUpstreamUnavailable})

		route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveFastest, nil, true)
		require.NoError(t, err)
		require.NotNil(t, route)
		assert.True(t, route.Synthetic)

		directKm := geo.HaversineKm(hanoiCenter, hanoiWest)
		assert.InDelta(t, directKm*1.3*1000, route.DistanceMeters, 0.001)
		// 40 km/h base boosted by 1.2 for the fastest objective.
		assert.InDelta(t, directKm*1.3/48*3600, route.DurationSeconds, 0.001)
		assert.Len(t, route.Coordinates, 21)
	})

	t.Run("fallback endpoints stay exact", func(t *testing.T) {
		uc, _ := newTestRouteUseCase(&stubRoutingRepo{err: apperrors.ErrUpstreamUnavailable})

		route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveEco, nil, false)
		require.NoError(t, err)
		assert.Equal(t, hanoiCenter, route.Coordinates[0])
		assert.Equal(t, hanoiWest, route.Coordinates[len(route.Coordinates)-1])
	})

	t.Run("interior points jitter within bounds", func(t *testing.T) {
		uc, _ := newTestRouteUseCase(&stubRoutingRepo{err: apperrors.ErrUpstreamUnavailable})

		route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveEco, nil, false)
		require.NoError(t, err)

		segments := len(route.Coordinates) - 1
		for i, p := range route.Coordinates {
			base := geo.Interpolate(hanoiCenter, hanoiWest, float64(i)/float64(segments))
			assert.LessOrEqual(t, absFloat(p.Lat-base.Lat), 0.005, "point %d lat", i)
			assert.LessOrEqual(t, absFloat(p.Lon-base.Lon), 0.005, "point %d lon", i)
		}
	})

	t.Run("objective multipliers", func(t *testing.T) {
		directKm := geo.HaversineKm(hanoiCenter, hanoiWest)
		cases := []struct {
			objective  domain.RouteObjective
			multiplier float64
		}{
			{domain.ObjectiveEco, 1.2},
			{domain.ObjectiveEconomic, 1.25},
			{domain.ObjectiveTruck, 1.4},
			{domain.ObjectiveFastest, 1.3},
		}
		for _, tc := range cases {
			uc, _ := newTestRouteUseCase(&stubRoutingRepo{err: apperrors.ErrUpstreamUnavailable})
			route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, tc.objective, nil, false)
			require.NoError(t, err)
			assert.InDelta(t, directKm*tc.multiplier*1000, route.DistanceMeters, 0.001, string(tc.objective))
		}
	})

	t.Run("truck fallback slows the vehicle down", func(t *testing.T) {
		uc, _ := newTestRouteUseCase(&stubRoutingRepo{err: apperrors.ErrUpstreamUnavailable})
		truck := &domain.VehicleProfile{MaxSpeedKmh: 80}

		route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveTruck, truck, false)
		require.NoError(t, err)
		expectedKm := geo.HaversineKm(hanoiCenter, hanoiWest) * 1.4
		assert.InDelta(t, expectedKm/72*3600, route.DurationSeconds, 0.001)
	})

	t.Run("empty candidate set also falls back", func(t *testing.T) {
		uc, _ := newTestRouteUseCase(&stubRoutingRepo{routes: []domain.RouteGeometry{}})

		route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveFastest, nil, true)
		require.NoError(t, err)
		assert.True(t, route.Synthetic)
	})

	t.Run("synthetic routes are not cached", func(t *testing.T) {
		uc, cache := newTestRouteUseCase(&stubRoutingRepo{err: apperrors.ErrUpstreamUnavailable})

		_, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveFastest, nil, true)
		require.NoError(t, err)
		assert.Empty(t, cache.routes)
	})
}

func TestAcquireRouteSelection(t *testing.T) {
	routing := &stubRoutingRepo{routes: candidateRoutes()}
	uc, cache := newTestRouteUseCase(routing)

	route, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveFastest, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 900.0, route.DurationSeconds)
	assert.False(t, route.Synthetic)
	assert.Len(t, cache.routes, 1)
}

func TestAcquireRouteCacheHit(t *testing.T) {
	routing := &stubRoutingRepo{routes: candidateRoutes()}
	uc, _ := newTestRouteUseCase(routing)

	first, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveFastest, nil, true)
	require.NoError(t, err)
	second, err := uc.AcquireRoute(context.Background(), hanoiCenter, hanoiWest, domain.ObjectiveFastest, nil, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, routing.calls, "second call must be served from cache")
}

func TestAcquireRouteInvalidCoordinates(t *testing.T) {
	uc, _ := newTestRouteUseCase(&stubRoutingRepo{routes: candidateRoutes()})

	cases := []struct {
		name                string
		origin, destination domain.Coordinate
	}{
		{"latitude out of range", domain.Coordinate{Lat: 91, Lon: 0}, hanoiWest},
		{"longitude out of range", hanoiCenter, domain.Coordinate{Lat: 0, Lon: 181}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.AcquireRoute(context.Background(), tc.origin, tc.destination, domain.ObjectiveFastest, nil, true)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
		})
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
