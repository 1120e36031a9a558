package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/utils"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	cfg        *config.RoutingConfig
	logger     *zap.Logger
}

// NewClient creates a routing client for an OSRM-compatible engine
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		profile: cfg.Profile,
		cfg:     cfg,
		logger:  logger,
	}
}

// routeResponse mirrors the OSRM route service response
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Legs []struct {
			Steps []json.RawMessage `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoutes fetches candidate routes between two points. Rate-limited
// responses are retried with exponential backoff; all other failures
// surface immediately.
func (c *client) GetRoutes(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	alternatives bool,
) ([]domain.RouteGeometry, error) {
	reqURL := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f",
		c.baseURL,
		url.PathEscape(c.profile),
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	query.Set("steps", "true")
	if alternatives {
		query.Set("alternatives", "3")
	}
	reqURL = reqURL + "?" + query.Encode()

	c.logger.Debug("Calling routing engine",
		zap.String("url", reqURL),
		zap.Bool("alternatives", alternatives))

	var routes []domain.RouteGeometry
	err := utils.RetryOnRateLimit(ctx, c.cfg.MaxRetries, c.cfg.RetryBaseDelay, func() error {
		var err error
		routes, err = c.fetch(ctx, reqURL)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Routing engine call successful",
		zap.Int("candidates", len(routes)))

	return routes, nil
}

func (c *client) fetch(ctx context.Context, reqURL string) ([]domain.RouteGeometry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("routing request failed: %w", apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Routing engine rate limit hit")
		return nil, fmt.Errorf("routing engine throttled: %w", apperrors.ErrRateLimited)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Routing engine returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("routing engine status %d: %w", resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	var osrmResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&osrmResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", apperrors.ErrUpstreamUnavailable)
	}

	if osrmResp.Code != "Ok" {
		c.logger.Error("Routing engine returned non-OK code",
			zap.String("code", osrmResp.Code))
		return nil, fmt.Errorf("routing engine code %s: %w", osrmResp.Code, apperrors.ErrUpstreamUnavailable)
	}

	routes := make([]domain.RouteGeometry, 0, len(osrmResp.Routes))
	for _, r := range osrmResp.Routes {
		coords := make([]domain.Coordinate, 0, len(r.Geometry.Coordinates))
		for _, pair := range r.Geometry.Coordinates {
			if len(pair) < 2 {
				continue
			}
			coords = append(coords, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
		}
		if len(coords) < 2 {
			continue
		}

		steps := 0
		for _, leg := range r.Legs {
			steps += len(leg.Steps)
		}

		routes = append(routes, domain.RouteGeometry{
			Coordinates:     coords,
			DistanceMeters:  r.Distance,
			DurationSeconds: r.Duration,
			StepCount:       steps,
		})
	}

	return routes, nil
}
