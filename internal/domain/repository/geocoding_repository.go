package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// GeocodingRepository defines access to the external geocoder.
type GeocodingRepository interface {
	// Search resolves a free-text query to candidate places
	Search(ctx context.Context, query string, limit int) ([]domain.Place, error)

	// Reverse resolves a coordinate to a display name
	Reverse(ctx context.Context, c domain.Coordinate) (string, error)
}
