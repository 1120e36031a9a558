package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/utils"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	cfg        *config.AdvisoryConfig
	logger     *zap.Logger
}

// NewClient creates a client for the hazard/advisory provider
func NewClient(cfg *config.AdvisoryConfig, logger *zap.Logger) repository.AdvisoryRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

type advisoryRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type alertsResponse struct {
	Alerts []struct {
		Type         string  `json:"type"`
		Title        string  `json:"title"`
		Location     string  `json:"location"`
		Detail       string  `json:"detail"`
		Impact       string  `json:"impact"`
		ProgressMark float64 `json:"progress_mark"`
	} `json:"alerts"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

// RouteAlerts fetches hazard alerts for the corridor between two
// named endpoints. Rate-limited responses are retried with backoff.
func (c *client) RouteAlerts(ctx context.Context, origin, destination string) ([]domain.HazardAlert, error) {
	c.logger.Debug("Calling advisory provider for alerts",
		zap.String("origin", origin),
		zap.String("destination", destination))

	var parsed alertsResponse
	err := utils.RetryOnRateLimit(ctx, c.cfg.MaxRetries, c.cfg.RetryBaseDelay, func() error {
		return c.post(ctx, "/v1/route-alerts", advisoryRequest{Origin: origin, Destination: destination}, &parsed)
	})
	if err != nil {
		return nil, err
	}

	alerts := make([]domain.HazardAlert, 0, len(parsed.Alerts))
	for _, a := range parsed.Alerts {
		mark := a.ProgressMark
		if mark < 0 {
			mark = 0
		}
		if mark > 1 {
			mark = 1
		}
		alerts = append(alerts, domain.HazardAlert{
			Type:         domain.AlertType(a.Type),
			Title:        a.Title,
			Location:     a.Location,
			Detail:       a.Detail,
			Impact:       domain.ImpactLevel(a.Impact),
			ProgressMark: mark,
		})
	}

	c.logger.Debug("Advisory provider returned alerts", zap.Int("count", len(alerts)))
	return alerts, nil
}

// RouteAdvice fetches a short structured-text driving advisory.
func (c *client) RouteAdvice(ctx context.Context, origin, destination string) (string, error) {
	c.logger.Debug("Calling advisory provider for advice",
		zap.String("origin", origin),
		zap.String("destination", destination))

	var parsed adviceResponse
	err := utils.RetryOnRateLimit(ctx, c.cfg.MaxRetries, c.cfg.RetryBaseDelay, func() error {
		return c.post(ctx, "/v1/route-advice", advisoryRequest{Origin: origin, Destination: destination}, &parsed)
	})
	if err != nil {
		return "", err
	}

	if parsed.Advice == "" {
		return "", fmt.Errorf("advisory provider returned empty advice: %w", apperrors.ErrUpstreamUnavailable)
	}

	return parsed.Advice, nil
}

func (c *client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("advisory request failed: %w", apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Advisory provider rate limit hit")
		return fmt.Errorf("advisory provider throttled: %w", apperrors.ErrRateLimited)
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Advisory provider returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("advisory provider status %d: %w", resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", apperrors.ErrUpstreamUnavailable)
	}

	return nil
}
