package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"github.com/route-optimizer/internal/pkg/geo"
	"go.uber.org/zap"
)

// Charging model design constants.
const (
	defaultBatteryCapacityKwh = 50.0
	defaultRangeKm            = 200.0

	// needsCharging fires when the projected remaining battery after
	// the trip would drop below this safety margin.
	batterySafetyMarginPct = 20.0

	minChargingTimeHours = 0.5
	maxRecommendedCharge = 80 // percent

	ultraFastThresholdKm = 100.0
	mediumThresholdKm    = 30.0

	offPeakSavingsRate = 0.25 // relative discount for charging 22:00-06:00
)

type ChargingUseCase struct {
	stationRepo repository.ChargingStationRepository
	logger      *zap.Logger
}

func NewChargingUseCase(stationRepo repository.ChargingStationRepository, logger *zap.Logger) *ChargingUseCase {
	return &ChargingUseCase{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// EstimateChargingNeed projects the energy demand of a trip. Pure and
// total: missing vehicle parameters fall back to a mid-size EV.
func (uc *ChargingUseCase) EstimateChargingNeed(
	distanceKm float64,
	vehicle *domain.VehicleProfile,
	currentBatteryPercent float64,
) domain.ChargingNeed {
	if distanceKm < 0 {
		distanceKm = 0
	}
	if currentBatteryPercent < 0 {
		currentBatteryPercent = 0
	}
	if currentBatteryPercent > 100 {
		currentBatteryPercent = 100
	}

	capacity := defaultBatteryCapacityKwh
	rangeKm := defaultRangeKm
	if vehicle != nil && vehicle.BatteryCapacityKwh > 0 {
		capacity = vehicle.BatteryCapacityKwh
	}
	if vehicle != nil && vehicle.RangeKm > 0 {
		rangeKm = vehicle.RangeKm
	}

	consumptionPerKm := capacity / rangeKm
	energyNeeded := distanceKm * consumptionPerKm
	percentNeeded := energyNeeded / capacity * 100

	class := domain.ChargerFast
	switch {
	case distanceKm > ultraFastThresholdKm:
		class = domain.ChargerUltraFast
	case distanceKm < mediumThresholdKm:
		class = domain.ChargerMedium
	}

	chargingHours := energyNeeded / class.PowerKw()
	if chargingHours < minChargingTimeHours {
		chargingHours = minChargingTimeHours
	}

	return domain.ChargingNeed{
		NeedsCharging:              currentBatteryPercent-percentNeeded < batterySafetyMarginPct,
		EnergyNeededKwh:            math.Round(energyNeeded*100) / 100,
		BatteryPercentNeeded:       math.Round(percentNeeded*100) / 100,
		RecommendedChargerClass:    class,
		EstimatedChargingTimeHours: math.Round(chargingHours*100) / 100,
		EstimatedCost:              math.Round(energyNeeded * electricityPricePerKwh),
	}
}

// BuildChargingPlan applies the rule-based schedule advisory to an
// already loaded station list. Pure; station lookup lives in
// PlanCharging.
func (uc *ChargingUseCase) BuildChargingPlan(
	route *domain.RouteGeometry,
	vehicle *domain.VehicleProfile,
	stations []domain.ChargingStation,
	departure time.Time,
) domain.ChargingPlan {
	plan := domain.ChargingPlan{
		Suggestions:         []string{},
		RecommendedStations: []domain.ChargingStation{},
	}
	if route == nil || len(route.Coordinates) < 2 {
		return plan
	}

	rangeKm := defaultRangeKm
	if vehicle != nil && vehicle.RangeKm > 0 {
		rangeKm = vehicle.RangeKm
	}

	distanceKm := route.DistanceKm()
	usage := distanceKm / rangeKm
	origin := route.Coordinates[0]
	destination := route.Coordinates[len(route.Coordinates)-1]

	need := uc.EstimateChargingNeed(distanceKm, vehicle, 100)

	switch {
	case usage > 0.7:
		plan.Suggestions = append(plan.Suggestions,
			fmt.Sprintf("Trip uses %.0f%% of vehicle range: charge fully before departure", usage*100))
		if s := nearestStation(stations, origin); s != nil {
			plan.RecommendedStations = append(plan.RecommendedStations, *s)
		}
	case usage >= 0.4:
		plan.Suggestions = append(plan.Suggestions,
			fmt.Sprintf("Trip uses %.0f%% of vehicle range: plan a charge at the destination", usage*100))
		if s := nearestStation(stations, destination); s != nil {
			plan.RecommendedStations = append(plan.RecommendedStations, *s)
		}
	}

	hour := departure.Hour()
	switch {
	case hour >= 22 || hour < 6:
		plan.Suggestions = append(plan.Suggestions,
			"Departure falls in the off-peak window (22:00-06:00): charging now is cheapest")
		plan.EstimatedCostSavings = math.Round(need.EnergyNeededKwh * electricityPricePerKwh * offPeakSavingsRate)
	case hour >= 17 && hour < 20:
		plan.Suggestions = append(plan.Suggestions,
			"Avoid charging during peak hours (17:00-20:00): grid prices are highest")
	}

	// Faster chargers on long trips shave waiting time compared to the
	// fast-class baseline.
	if need.RecommendedChargerClass == domain.ChargerUltraFast {
		baseline := need.EnergyNeededKwh / domain.ChargerFast.PowerKw()
		plan.TimeOptimizationMinutes = math.Round((baseline - need.EnergyNeededKwh/domain.ChargerUltraFast.PowerKw()) * 60)
	}

	plan.Suggestions = append(plan.Suggestions,
		fmt.Sprintf("Cap charging at %d%% to protect battery health", maxRecommendedCharge))

	return plan
}

// PlanCharging loads candidate stations around the route endpoints and
// builds the advisory plan.
func (uc *ChargingUseCase) PlanCharging(
	ctx context.Context,
	route *domain.RouteGeometry,
	vehicle *domain.VehicleProfile,
	departure time.Time,
) (domain.ChargingPlan, error) {
	if route == nil || len(route.Coordinates) < 2 {
		return domain.ChargingPlan{Suggestions: []string{}, RecommendedStations: []domain.ChargingStation{}}, nil
	}

	origin := route.Coordinates[0]
	destination := route.Coordinates[len(route.Coordinates)-1]

	stations, err := uc.stationRepo.ListNearest(ctx, origin, 5)
	if err != nil {
		uc.logger.Warn("Failed to load stations near origin", zap.Error(err))
	}
	destStations, err := uc.stationRepo.ListNearest(ctx, destination, 5)
	if err != nil {
		uc.logger.Warn("Failed to load stations near destination", zap.Error(err))
	}
	stations = append(stations, destStations...)

	return uc.BuildChargingPlan(route, vehicle, stations, departure), nil
}

// NearestStations exposes the station catalog ordered by distance.
func (uc *ChargingUseCase) NearestStations(ctx context.Context, c domain.Coordinate, limit int) ([]domain.ChargingStation, error) {
	return uc.stationRepo.ListNearest(ctx, c, limit)
}

func nearestStation(stations []domain.ChargingStation, c domain.Coordinate) *domain.ChargingStation {
	var best *domain.ChargingStation
	bestDist := math.MaxFloat64
	for i := range stations {
		if d := geo.HaversineKm(c, stations[i].Position); d < bestDist {
			best = &stations[i]
			bestDist = d
		}
	}
	return best
}
