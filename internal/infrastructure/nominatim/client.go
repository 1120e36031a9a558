package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a geocoding client for a Nominatim-compatible service
func NewClient(cfg *config.GeocodingConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Search resolves a free-text query to candidate places
func (c *client) Search(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	if limit <= 0 {
		limit = 5
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling geocoder search",
		zap.String("query", query),
		zap.Int("limit", limit))

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		c.logger.Error("Failed to decode geocoder response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode geocoder response: %w", apperrors.ErrUpstreamUnavailable)
	}

	places := make([]domain.Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		name := r.Name
		if name == "" {
			name = r.DisplayName
		}

		places = append(places, domain.Place{
			Name:     name,
			Address:  r.DisplayName,
			Position: domain.Coordinate{Lat: lat, Lon: lon},
		})
	}

	c.logger.Debug("Geocoder search successful", zap.Int("results", len(places)))
	return places, nil
}

// Reverse resolves a coordinate to a display name
func (c *client) Reverse(ctx context.Context, coord domain.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("format", "json")

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling geocoder reverse",
		zap.Float64("lat", coord.Lat),
		zap.Float64("lon", coord.Lon))

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return "", err
	}

	var result reverseResult
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("Failed to decode geocoder response", zap.Error(err))
		return "", fmt.Errorf("failed to decode geocoder response: %w", apperrors.ErrUpstreamUnavailable)
	}

	if result.DisplayName == "" {
		return "", fmt.Errorf("geocoder returned no display name: %w", apperrors.ErrUpstreamUnavailable)
	}

	return result.DisplayName, nil
}

func (c *client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("geocoder request failed: %w", apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Geocoder rate limit hit")
		return nil, fmt.Errorf("geocoder throttled: %w", apperrors.ErrRateLimited)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoder status %d: %w", resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	return io.ReadAll(resp.Body)
}
