package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&config.GeocodingConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		UserAgent:      "route-optimizer-test/1.0",
	}, zap.NewNop())

	return c.(*client)
}

func TestSearch(t *testing.T) {
	t.Run("decodes places", func(t *testing.T) {
		var gotUA, gotQuery string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`[
				{"display_name": "Hoan Kiem Lake, Hanoi, Vietnam", "name": "Hoan Kiem Lake", "lat": "21.0285", "lon": "105.8542"},
				{"display_name": "Hoan Kiem District, Hanoi", "name": "", "lat": "21.0300", "lon": "105.8520"}
			]`))
		})

		places, err := c.Search(context.Background(), "Hoan Kiem", 5)
		require.NoError(t, err)
		require.Len(t, places, 2)

		assert.Equal(t, "route-optimizer-test/1.0", gotUA)
		assert.Contains(t, gotQuery, "limit=5")
		assert.Equal(t, "Hoan Kiem Lake", places[0].Name)
		assert.Equal(t, domain.Coordinate{Lat: 21.0285, Lon: 105.8542}, places[0].Position)
		// Name falls back to the display name when absent.
		assert.Equal(t, "Hoan Kiem District, Hanoi", places[1].Name)
	})

	t.Run("skips rows with unparsable coordinates", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"display_name": "Broken", "lat": "not-a-number", "lon": "105.8"},
				{"display_name": "Good", "lat": "21.0", "lon": "105.8"}
			]`))
		})

		places, err := c.Search(context.Background(), "anything", 5)
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, "Good", places[0].Name)
	})

	t.Run("defaults the limit", func(t *testing.T) {
		var gotQuery string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`[]`))
		})

		_, err := c.Search(context.Background(), "anything", 0)
		require.NoError(t, err)
		assert.Contains(t, gotQuery, "limit=5")
	})

	t.Run("server error maps to upstream unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.Search(context.Background(), "anything", 5)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("rate limit maps to rate limited", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.Search(context.Background(), "anything", 5)
		assert.ErrorIs(t, err, apperrors.ErrRateLimited)
	})
}

func TestReverse(t *testing.T) {
	t.Run("returns the display name", func(t *testing.T) {
		var gotQuery string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Write([]byte(`{"display_name": "Hoan Kiem, Hanoi, Vietnam"}`))
		})

		label, err := c.Reverse(context.Background(), domain.Coordinate{Lat: 21.0285, Lon: 105.8542})
		require.NoError(t, err)
		assert.Equal(t, "Hoan Kiem, Hanoi, Vietnam", label)
		assert.Contains(t, gotQuery, "lat=21.0285")
	})

	t.Run("empty display name is an error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		_, err := c.Reverse(context.Background(), domain.Coordinate{Lat: 21.0285, Lon: 105.8542})
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})
}
