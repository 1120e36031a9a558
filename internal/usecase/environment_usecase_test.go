package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/route-optimizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnvironmentSample(t *testing.T) {
	validWeather := map[string]float64{"clear": 1.0, "drizzle": 1.3, "fog": 1.5, "heat": 1.1}
	validTraffic := map[string]float64{"free-flow": 1.0, "normal": 1.1, "slow": 1.4, "jam": 1.8}

	now := time.Now()
	for i := 0; i < 50; i++ {
		env := Sample(now)

		impact, ok := validWeather[env.Weather]
		require.True(t, ok, "unknown weather %q", env.Weather)
		assert.Equal(t, impact, env.WeatherImpact)

		mult, ok := validTraffic[env.Traffic]
		require.True(t, ok, "unknown traffic %q", env.Traffic)
		assert.Equal(t, mult, env.TrafficMultiplier)

		assert.GreaterOrEqual(t, env.TemperatureC, 22.0)
		assert.Less(t, env.TemperatureC, 36.0)
		assert.GreaterOrEqual(t, env.HumidityPct, 55.0)
		assert.Less(t, env.HumidityPct, 90.0)
		assert.GreaterOrEqual(t, env.WindSpeedKmh, 0.0)
		assert.Less(t, env.WindSpeedKmh, 25.0)
		assert.Equal(t, now, env.SampledAt)
	}
}

func TestEnvironmentCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit short-circuits sampling", func(t *testing.T) {
		cache := newMemoryCache()
		cached := &domain.EnvironmentSnapshot{Weather: "fog", WeatherImpact: 1.5, Traffic: "jam", TrafficMultiplier: 1.8}
		cache.env = cached

		uc := NewEnvironmentUseCase(cache, zap.NewNop(), time.Minute)
		assert.Equal(t, cached, uc.Current(ctx))
	})

	t.Run("cache miss samples and stores", func(t *testing.T) {
		cache := newMemoryCache()
		uc := NewEnvironmentUseCase(cache, zap.NewNop(), time.Minute)

		env := uc.Current(ctx)
		require.NotNil(t, env)
		assert.Equal(t, env, cache.env)
	})

	t.Run("refresh replaces the cached snapshot", func(t *testing.T) {
		cache := newMemoryCache()
		cache.env = &domain.EnvironmentSnapshot{Weather: "stale"}

		uc := NewEnvironmentUseCase(cache, zap.NewNop(), time.Minute)
		env := uc.Refresh(ctx)
		assert.NotEqual(t, "stale", env.Weather)
		assert.Equal(t, env, cache.env)
	})
}
