package geo

import (
	"testing"

	"github.com/route-optimizer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	hanoi := domain.Coordinate{Lat: 21.0285, Lon: 105.8542}
	hcmc := domain.Coordinate{Lat: 10.8231, Lon: 106.6297}

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, HaversineKm(hanoi, hcmc), HaversineKm(hcmc, hanoi))
	})

	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineKm(hanoi, hanoi))
	})

	t.Run("known distance", func(t *testing.T) {
		// Hanoi - Ho Chi Minh City is roughly 1140 km great-circle
		d := HaversineKm(hanoi, hcmc)
		assert.InDelta(t, 1140, d, 20)
	})

	t.Run("short distance", func(t *testing.T) {
		near := domain.Coordinate{Lat: 21.0385, Lon: 105.8542}
		d := HaversineKm(hanoi, near)
		assert.InDelta(t, 1.11, d, 0.02) // 0.01 deg latitude ~ 1.11 km
	})
}

func TestBearingDegrees(t *testing.T) {
	origin := domain.Coordinate{Lat: 21.0, Lon: 105.8}

	t.Run("due north", func(t *testing.T) {
		north := domain.Coordinate{Lat: 21.1, Lon: 105.8}
		assert.InDelta(t, 0, BearingDegrees(origin, north), 0.5)
	})

	t.Run("due east", func(t *testing.T) {
		east := domain.Coordinate{Lat: 21.0, Lon: 105.9}
		assert.InDelta(t, 90, BearingDegrees(origin, east), 0.5)
	})

	t.Run("due south", func(t *testing.T) {
		south := domain.Coordinate{Lat: 20.9, Lon: 105.8}
		assert.InDelta(t, 180, BearingDegrees(origin, south), 0.5)
	})

	t.Run("normalized range", func(t *testing.T) {
		west := domain.Coordinate{Lat: 21.0, Lon: 105.7}
		b := BearingDegrees(origin, west)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
		assert.InDelta(t, 270, b, 0.5)
	})
}

func TestInterpolate(t *testing.T) {
	a := domain.Coordinate{Lat: 21.0, Lon: 105.0}
	b := domain.Coordinate{Lat: 22.0, Lon: 106.0}

	t.Run("endpoints", func(t *testing.T) {
		assert.Equal(t, a, Interpolate(a, b, 0))
		assert.Equal(t, b, Interpolate(a, b, 1))
	})

	t.Run("midpoint", func(t *testing.T) {
		mid := Interpolate(a, b, 0.5)
		assert.InDelta(t, 21.5, mid.Lat, 1e-9)
		assert.InDelta(t, 105.5, mid.Lon, 1e-9)
	})

	t.Run("clamps out of range", func(t *testing.T) {
		assert.Equal(t, a, Interpolate(a, b, -0.5))
		assert.Equal(t, b, Interpolate(a, b, 1.5))
	})
}

func TestValidateCoordinate(t *testing.T) {
	assert.True(t, ValidateCoordinate(domain.Coordinate{Lat: 21.0285, Lon: 105.8542}))
	assert.True(t, ValidateCoordinate(domain.Coordinate{Lat: -90, Lon: 180}))
	assert.False(t, ValidateCoordinate(domain.Coordinate{Lat: 91, Lon: 0}))
	assert.False(t, ValidateCoordinate(domain.Coordinate{Lat: 0, Lon: -181}))
}
