package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

// environmentStates pair a condition name with its cost multiplier.
type environmentState struct {
	name       string
	multiplier float64
}

var (
	weatherStates = []environmentState{
		{"clear", 1.0},
		{"drizzle", 1.3},
		{"fog", 1.5},
		{"heat", 1.1},
	}
	trafficStates = []environmentState{
		{"free-flow", 1.0},
		{"normal", 1.1},
		{"slow", 1.4},
		{"jam", 1.8},
	}
)

type EnvironmentUseCase struct {
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewEnvironmentUseCase(cacheRepo repository.CacheRepository, logger *zap.Logger, cacheTTL time.Duration) *EnvironmentUseCase {
	return &EnvironmentUseCase{
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Current returns the environment snapshot feeding the cost model,
// sampling a fresh one on cache miss.
func (uc *EnvironmentUseCase) Current(ctx context.Context) *domain.EnvironmentSnapshot {
	if cached, err := uc.cacheRepo.GetEnvironment(ctx); err == nil && cached != nil {
		return cached
	}
	return uc.Refresh(ctx)
}

// Refresh samples a new snapshot and stores it in the cache.
func (uc *EnvironmentUseCase) Refresh(ctx context.Context) *domain.EnvironmentSnapshot {
	env := Sample(time.Now())

	if err := uc.cacheRepo.SetEnvironment(ctx, env, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache environment snapshot", zap.Error(err))
	}

	uc.logger.Debug("Environment snapshot refreshed",
		zap.String("weather", env.Weather),
		zap.String("traffic", env.Traffic),
		zap.Float64("traffic_multiplier", env.TrafficMultiplier))

	return env
}

// Sample draws a random weather/traffic condition. A stand-in for a
// live conditions feed; multipliers are the values the cost model
// expects.
func Sample(now time.Time) *domain.EnvironmentSnapshot {
	weather := weatherStates[rand.Intn(len(weatherStates))]
	traffic := trafficStates[rand.Intn(len(trafficStates))]

	return &domain.EnvironmentSnapshot{
		Weather:           weather.name,
		WeatherImpact:     weather.multiplier,
		Traffic:           traffic.name,
		TrafficMultiplier: traffic.multiplier,
		TemperatureC:      22 + rand.Float64()*14,
		HumidityPct:       55 + rand.Float64()*35,
		WindSpeedKmh:      rand.Float64() * 25,
		SampledAt:         now,
	}
}
