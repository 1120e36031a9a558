package usecase

import (
	"math"

	"github.com/route-optimizer/internal/domain"
	"go.uber.org/zap"
)

// Cost model design constants. Prices are VND; surcharges follow the
// regional tolling scheme and are not configurable at runtime.
const (
	fuelPricePerLiter      = 24000.0
	electricityPricePerKwh = 3858.0

	tollSurcharge        = 50000.0 // flat, applied beyond tollFreeDistanceKm
	tollFreeDistanceKm   = 50.0
	driverCostPer100Km   = 200000.0
	maintenancePerKm     = 500.0

	defaultEmissionFactor  = 0.15 // kg CO2 per km
	defaultFuelConsumption = 0.25 // liters per km
)

// CostUseCase hosts the estimation layer. Every method is a pure,
// total function: out-of-range inputs are clamped to documented
// defaults instead of producing errors.
type CostUseCase struct {
	logger *zap.Logger
}

func NewCostUseCase(logger *zap.Logger) *CostUseCase {
	return &CostUseCase{logger: logger}
}

// EstimateEmission projects CO2/NOx/PM output for a trip. NOx and PM
// are derived from CO2 with fixed ratios.
func (uc *CostUseCase) EstimateEmission(
	distanceMeters float64,
	vehicle *domain.VehicleProfile,
	ageYears, loadTons, trafficMultiplier float64,
	objective domain.RouteObjective,
) domain.EmissionEstimate {
	if distanceMeters < 0 {
		distanceMeters = 0
	}
	if ageYears < 0 {
		ageYears = 0
	}
	if loadTons < 0 {
		loadTons = 0
	}
	if trafficMultiplier < 1 {
		trafficMultiplier = 1
	}

	factor := defaultEmissionFactor
	if vehicle != nil && vehicle.EmissionFactor > 0 {
		factor = vehicle.EmissionFactor
	}

	base := factor * (distanceMeters / 1000)
	ageFactor := 1 + 0.02*ageYears
	loadFactor := 1 + 0.01*loadTons

	co2 := base * ageFactor * loadFactor * trafficMultiplier * emissionRouteFactor(objective)

	return domain.EmissionEstimate{
		CO2Kg: co2,
		NOxKg: 0.02 * co2,
		PMKg:  0.001 * co2,
	}
}

// EstimateFuelCost projects the total trip cost: fuel plus toll,
// driver-time and maintenance surcharges.
func (uc *CostUseCase) EstimateFuelCost(
	distanceKm float64,
	vehicle *domain.VehicleProfile,
	trafficMultiplier float64,
	objective domain.RouteObjective,
) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	if trafficMultiplier < 1 {
		trafficMultiplier = 1
	}

	consumptionPerKm := defaultFuelConsumption
	if vehicle != nil && vehicle.FuelConsumption > 0 {
		consumptionPerKm = vehicle.FuelConsumption
	}

	liters := consumptionPerKm * distanceKm * trafficMultiplier * fuelRouteFactor(objective)
	total := liters * fuelPricePerLiter

	if distanceKm > tollFreeDistanceKm {
		total += tollSurcharge
	}
	total += (distanceKm / 100) * driverCostPer100Km
	total += distanceKm * maintenancePerKm

	return math.Round(total)
}

// BuildSummary derives the per-objective route snapshot shown to the
// caller. Age and load default to zero here; detailed emission
// estimates go through EstimateEmission directly.
func (uc *CostUseCase) BuildSummary(
	route *domain.RouteGeometry,
	vehicle *domain.VehicleProfile,
	env *domain.EnvironmentSnapshot,
	objective domain.RouteObjective,
) domain.RouteSummary {
	traffic := 1.0
	if env != nil && env.TrafficMultiplier > 1 {
		traffic = env.TrafficMultiplier
	}

	distanceKm := route.DistanceKm()

	return domain.RouteSummary{
		Objective:  objective,
		DistanceKm: distanceKm,
		ETAMinutes: math.Ceil(route.DurationSeconds / 60),
		FuelCost:   uc.EstimateFuelCost(distanceKm, vehicle, traffic, objective),
		CO2Kg:      uc.EstimateEmission(route.DistanceMeters, vehicle, 0, 0, traffic, objective).CO2Kg,
	}
}

func emissionRouteFactor(objective domain.RouteObjective) float64 {
	switch objective {
	case domain.ObjectiveEco:
		return 0.9
	case domain.ObjectiveEconomic:
		return 0.95
	case domain.ObjectiveTruck:
		return 1.1
	default:
		return 1.0
	}
}

func fuelRouteFactor(objective domain.RouteObjective) float64 {
	switch objective {
	case domain.ObjectiveEconomic:
		return 0.9
	case domain.ObjectiveEco:
		return 0.85
	case domain.ObjectiveTruck:
		return 1.1
	default:
		return 1.0
	}
}
