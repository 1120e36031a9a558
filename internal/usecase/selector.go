package usecase

import (
	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
)

// stepPenaltyMeters weights maneuver count against distance for
// truck-legal selection: each turn costs as much as one kilometer.
const stepPenaltyMeters = 1000.0

// SelectRoute picks the best candidate for an objective. Candidates
// are scored with strict less-than comparison, so the first of several
// equally scored routes wins and selection is fully deterministic.
func SelectRoute(candidates []domain.RouteGeometry, objective domain.RouteObjective, vehicle *domain.VehicleProfile) (*domain.RouteGeometry, error) {
	if len(candidates) == 0 {
		return nil, apperrors.ErrEmptyRouteSet
	}
	if len(candidates) == 1 {
		return &candidates[0], nil
	}

	if vehicle != nil && vehicle.HeightRestricted {
		objective = domain.ObjectiveTruck
	}

	best := 0
	bestScore := routeScore(&candidates[0], objective)
	for i := 1; i < len(candidates); i++ {
		if score := routeScore(&candidates[i], objective); score < bestScore {
			best = i
			bestScore = score
		}
	}

	return &candidates[best], nil
}

func routeScore(r *domain.RouteGeometry, objective domain.RouteObjective) float64 {
	switch objective {
	case domain.ObjectiveFastest:
		return r.DurationSeconds
	case domain.ObjectiveEconomic:
		return 0.7*r.DistanceMeters + 0.3*r.DurationSeconds
	case domain.ObjectiveEco:
		return r.DistanceMeters
	case domain.ObjectiveTruck:
		return r.DistanceMeters + float64(r.StepCount)*stepPenaltyMeters
	default:
		return r.DurationSeconds
	}
}
