package navigation

import (
	"math/rand"
	"time"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/pkg/geo"
)

// Speed bands in km/h. Baseline models free driving with traffic
// noise; the impact bands kick in while a hazard alert is active.
const (
	baselineSpeedMin = 45.0
	highImpactSpeed  = 5.0
	mediumImpact     = 20.0
	speedBandWidth   = 10.0
)

// NewState builds the initial Running state for a route: positioned
// at the first point with the full distance ahead.
func NewState(route *domain.RouteGeometry, now time.Time) domain.NavigationState {
	return domain.NavigationState{
		Status:              domain.StatusRunning,
		StepIndex:           0,
		Position:            route.Coordinates[0],
		SpeedKmh:            0,
		RemainingDistanceKm: route.DistanceKm(),
		ETA:                 now.Add(time.Duration(route.DurationSeconds * float64(time.Second))),
	}
}

// Advance applies one simulation tick and returns the successor state.
// Pure except for draws from rng: it never mutates its input, touches
// no shared state and does no I/O, which is what makes the transition
// unit-testable without timers.
//
// A Completed state is a fixed point: advancing it returns it
// unchanged.
func Advance(
	s domain.NavigationState,
	route *domain.RouteGeometry,
	alerts []domain.HazardAlert,
	window float64,
	now time.Time,
	rng *rand.Rand,
) domain.NavigationState {
	if s.Status != domain.StatusRunning {
		return s
	}

	totalPoints := len(route.Coordinates)
	progress := float64(s.StepIndex) / float64(totalPoints)

	next := s
	next.RemainingDistanceKm = route.DistanceKm() * (1 - progress)

	// At most one alert is active; the first list entry whose mark
	// falls inside the proximity window wins.
	next.ActiveAlert = nil
	for i := range alerts {
		if mark := alerts[i].ProgressMark; mark >= progress-window && mark <= progress+window {
			alert := alerts[i]
			next.ActiveAlert = &alert
			break
		}
	}

	next.SpeedKmh = baselineSpeedMin + rng.Float64()*speedBandWidth
	if next.ActiveAlert != nil {
		switch next.ActiveAlert.Impact {
		case domain.ImpactHigh:
			next.SpeedKmh = highImpactSpeed + rng.Float64()*speedBandWidth
		case domain.ImpactMedium:
			next.SpeedKmh = mediumImpact + rng.Float64()*speedBandWidth
		}
	}

	if s.StepIndex+1 < totalPoints {
		current := route.Coordinates[s.StepIndex]
		target := route.Coordinates[s.StepIndex+1]
		next.Position = target
		next.HeadingDegrees = geo.BearingDegrees(current, target)
	}
	next.ETA = now.Add(time.Duration(route.DurationSeconds * (1 - progress) * float64(time.Second)))

	next.StepIndex = s.StepIndex + 1
	if next.StepIndex >= totalPoints-1 {
		next.Status = domain.StatusCompleted
		next.Position = route.Coordinates[totalPoints-1]
		next.SpeedKmh = 0
		next.ActiveAlert = nil
		next.RemainingDistanceKm = 0
	}

	return next
}
