package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const okBody = `{
	"code": "Ok",
	"routes": [
		{
			"distance": 12500.4,
			"duration": 1080.2,
			"geometry": {"coordinates": [[105.8542, 21.0285], [105.8471, 21.0317], [105.8400, 21.0350]]},
			"legs": [{"steps": [{}, {}, {}]}, {"steps": [{}, {}]}]
		},
		{
			"distance": 14100.0,
			"duration": 950.0,
			"geometry": {"coordinates": [[105.8542, 21.0285], [105.8400, 21.0350]]},
			"legs": [{"steps": [{}]}]
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&config.RoutingConfig{
		BaseURL:        srv.URL,
		Profile:        "driving",
		RequestTimeout: 5 * time.Second,
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	}, zap.NewNop())

	return srv, c.(*client)
}

var (
	origin      = domain.Coordinate{Lat: 21.0285, Lon: 105.8542}
	destination = domain.Coordinate{Lat: 21.0350, Lon: 105.8400}
)

func TestGetRoutes(t *testing.T) {
	t.Run("decodes candidates", func(t *testing.T) {
		var gotPath, gotQuery string
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			w.Write([]byte(okBody))
		})

		routes, err := c.GetRoutes(context.Background(), origin, destination, true)
		require.NoError(t, err)
		require.Len(t, routes, 2)

		assert.Equal(t, "/route/v1/driving/105.854200,21.028500;105.840000,21.035000", gotPath)
		assert.Contains(t, gotQuery, "alternatives=3")
		assert.Contains(t, gotQuery, "geometries=geojson")

		first := routes[0]
		assert.Equal(t, 12500.4, first.DistanceMeters)
		assert.Equal(t, 1080.2, first.DurationSeconds)
		assert.Equal(t, 5, first.StepCount)
		require.Len(t, first.Coordinates, 3)
		// GeoJSON ships [lon, lat]; domain coordinates are lat-first.
		assert.Equal(t, domain.Coordinate{Lat: 21.0285, Lon: 105.8542}, first.Coordinates[0])
		assert.False(t, first.Synthetic)
	})

	t.Run("omits alternatives parameter when not requested", func(t *testing.T) {
		var gotQuery string
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(okBody))
		})

		_, err := c.GetRoutes(context.Background(), origin, destination, false)
		require.NoError(t, err)
		assert.NotContains(t, gotQuery, "alternatives")
	})

	t.Run("non-Ok engine code fails", func(t *testing.T) {
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
		})

		_, err := c.GetRoutes(context.Background(), origin, destination, false)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("server error maps to upstream unavailable", func(t *testing.T) {
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.GetRoutes(context.Background(), origin, destination, false)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("rate limiting is retried", func(t *testing.T) {
		var calls atomic.Int32
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(okBody))
		})

		routes, err := c.GetRoutes(context.Background(), origin, destination, false)
		require.NoError(t, err)
		assert.Len(t, routes, 2)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("persistent rate limiting exhausts retries", func(t *testing.T) {
		var calls atomic.Int32
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.GetRoutes(context.Background(), origin, destination, false)
		assert.ErrorIs(t, err, apperrors.ErrRateLimited)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("degenerate geometries are skipped", func(t *testing.T) {
		_, c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"code": "Ok",
				"routes": [{"distance": 1, "duration": 1, "geometry": {"coordinates": [[105.8, 21.0]]}, "legs": []}]
			}`))
		})

		routes, err := c.GetRoutes(context.Background(), origin, destination, false)
		require.NoError(t, err)
		assert.Empty(t, routes)
	})
}
