package usecase

import (
	"context"
	"fmt"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

// fallbackAlerts is substituted when the advisory provider is down so
// downstream consumers (the simulator in particular) always receive a
// non-empty alert list.
var fallbackAlerts = []domain.HazardAlert{
	{
		Type:         domain.AlertTraffic,
		Title:        "Heavy traffic expected",
		Location:     "Mid-route corridor",
		Detail:       "Congestion builds up around the midpoint during business hours",
		Impact:       domain.ImpactMedium,
		ProgressMark: 0.2,
	},
	{
		Type:         domain.AlertAccident,
		Title:        "Accident-prone section",
		Location:     "Route midpoint",
		Detail:       "Historical accident cluster, reduce speed and keep distance",
		Impact:       domain.ImpactHigh,
		ProgressMark: 0.5,
	},
	{
		Type:         domain.AlertConstruction,
		Title:        "Road works ahead",
		Location:     "Final third of the route",
		Detail:       "Lane narrowing due to ongoing construction",
		Impact:       domain.ImpactMedium,
		ProgressMark: 0.8,
	},
}

type AdvisoryUseCase struct {
	advisoryRepo repository.AdvisoryRepository
	logger       *zap.Logger
}

func NewAdvisoryUseCase(advisoryRepo repository.AdvisoryRepository, logger *zap.Logger) *AdvisoryUseCase {
	return &AdvisoryUseCase{
		advisoryRepo: advisoryRepo,
		logger:       logger,
	}
}

// Alerts fetches hazard alerts for a corridor. Provider failures are
// recovered with the fixed fallback list; the result is never empty
// and the method never returns an error.
func (uc *AdvisoryUseCase) Alerts(ctx context.Context, origin, destination string) []domain.HazardAlert {
	alerts, err := uc.advisoryRepo.RouteAlerts(ctx, origin, destination)
	if err != nil {
		uc.logger.Warn("Advisory provider failed, using fallback alerts", zap.Error(err))
		return fallbackAlerts
	}
	if len(alerts) == 0 {
		return fallbackAlerts
	}
	return alerts
}

// Advice fetches a short driving advisory. Provider failures are
// recovered with a templated sentence naming both endpoints.
func (uc *AdvisoryUseCase) Advice(ctx context.Context, origin, destination string) string {
	advice, err := uc.advisoryRepo.RouteAdvice(ctx, origin, destination)
	if err != nil {
		uc.logger.Warn("Advisory provider failed, using fallback advice", zap.Error(err))
		return fmt.Sprintf(
			"Route from %s to %s: drive carefully, expect congestion during peak hours and check vehicle condition before departure.",
			origin, destination)
	}
	return advice
}
