package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// RoutingRepository defines access to the external routing engine.
type RoutingRepository interface {
	// GetRoutes returns candidate routes between two points. When
	// alternatives is true the upstream is asked for alternative
	// geometries as well. The slice may be empty.
	GetRoutes(
		ctx context.Context,
		origin domain.Coordinate,
		destination domain.Coordinate,
		alternatives bool,
	) ([]domain.RouteGeometry, error)
}
