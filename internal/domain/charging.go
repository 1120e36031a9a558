package domain

// ChargerClass - charger power class recommended for a trip
type ChargerClass string

const (
	ChargerMedium    ChargerClass = "medium"
	ChargerFast      ChargerClass = "fast"
	ChargerUltraFast ChargerClass = "ultra_fast"
)

// PowerKw returns the rated power used for charging time estimates.
func (c ChargerClass) PowerKw() float64 {
	switch c {
	case ChargerUltraFast:
		return 250
	case ChargerMedium:
		return 60
	default:
		return 150
	}
}

// ChargingStation - public charging point
type ChargingStation struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Address    string     `json:"address" db:"address"`
	Position   Coordinate `json:"position"`
	PowerKw    float64    `json:"power_kw" db:"power_kw"`
	SlotsFree  int        `json:"slots_free" db:"slots_free"`
	SlotsTotal int        `json:"slots_total" db:"slots_total"`
}

// ChargingNeed - estimate of the energy required for a trip
type ChargingNeed struct {
	NeedsCharging              bool         `json:"needs_charging"`
	EnergyNeededKwh            float64      `json:"energy_needed_kwh"`
	BatteryPercentNeeded       float64      `json:"battery_percent_needed"`
	RecommendedChargerClass    ChargerClass `json:"recommended_charger_class"`
	EstimatedChargingTimeHours float64      `json:"estimated_charging_time_hours"`
	EstimatedCost              float64      `json:"estimated_cost"`
}

// ChargingPlan - rule-based charging schedule recommendation
type ChargingPlan struct {
	Suggestions             []string          `json:"suggestions"`
	RecommendedStations     []ChargingStation `json:"recommended_stations"`
	EstimatedCostSavings    float64           `json:"estimated_cost_savings"`
	TimeOptimizationMinutes float64           `json:"time_optimization_minutes"`
}
