package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// AdvisoryRepository defines access to the hazard/advisory provider.
type AdvisoryRepository interface {
	// RouteAlerts returns hazard alerts for a corridor between two
	// named endpoints, positioned on the normalized route axis.
	RouteAlerts(ctx context.Context, origin, destination string) ([]domain.HazardAlert, error)

	// RouteAdvice returns a short structured-text driving advisory.
	RouteAdvice(ctx context.Context, origin, destination string) (string, error)
}
