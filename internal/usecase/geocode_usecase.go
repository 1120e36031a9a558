package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

type GeocodeUseCase struct {
	geocodingRepo repository.GeocodingRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	cacheTTL      time.Duration
}

func NewGeocodeUseCase(
	geocodingRepo repository.GeocodingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocodingRepo: geocodingRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

// Search resolves a free-text query to candidate places, with a
// read-through cache in front of the geocoder.
func (uc *GeocodeUseCase) Search(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	key := fmt.Sprintf("geocode:search:%s:%d", strings.ToLower(strings.TrimSpace(query)), limit)

	if cached, err := uc.cacheRepo.GetPlaces(ctx, key); err == nil && cached != nil {
		uc.logger.Debug("Geocode cache hit", zap.String("key", key))
		return cached, nil
	}

	places, err := uc.geocodingRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetPlaces(ctx, key, places, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode results", zap.Error(err))
	}

	return places, nil
}

// ReverseLabel resolves a coordinate to a display name. Geocoder
// failures degrade to the formatted coordinate string, so the caller
// always receives a usable label.
func (uc *GeocodeUseCase) ReverseLabel(ctx context.Context, c domain.Coordinate) string {
	label, err := uc.geocodingRepo.Reverse(ctx, c)
	if err != nil {
		uc.logger.Warn("Reverse geocoding failed, using coordinate label",
			zap.Float64("lat", c.Lat),
			zap.Float64("lon", c.Lon),
			zap.Error(err))
		return c.Label()
	}
	return label
}
