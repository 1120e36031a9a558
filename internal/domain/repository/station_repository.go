package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// ChargingStationRepository defines access to the charging station catalog
type ChargingStationRepository interface {
	// ListNearest returns up to limit stations ordered by distance from c
	ListNearest(ctx context.Context, c domain.Coordinate, limit int) ([]domain.ChargingStation, error)

	// List returns all stations
	List(ctx context.Context) ([]domain.ChargingStation, error)
}
