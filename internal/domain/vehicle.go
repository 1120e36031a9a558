package domain

// VehicleProfile - static vehicle parameters used by the cost
// and emission model. Zero values mean "use the model default".
type VehicleProfile struct {
	ID                 string  `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	EmissionFactor     float64 `json:"emission_factor" db:"emission_factor"`         // kg CO2 per km
	FuelConsumption    float64 `json:"fuel_consumption" db:"fuel_consumption"`       // liters per km
	MaxSpeedKmh        float64 `json:"max_speed_kmh" db:"max_speed_kmh"`             // legal/technical cap
	BatteryCapacityKwh float64 `json:"battery_capacity_kwh" db:"battery_capacity_kwh"` // 0 for combustion vehicles
	RangeKm            float64 `json:"range_km" db:"range_km"`
	HeightRestricted   bool    `json:"height_restricted" db:"height_restricted"`
}

// Electric reports whether the profile describes an electric vehicle.
func (v *VehicleProfile) Electric() bool {
	return v != nil && v.BatteryCapacityKwh > 0
}

// EmissionEstimate - projected pollutant output for one trip
type EmissionEstimate struct {
	CO2Kg float64 `json:"co2_kg"`
	NOxKg float64 `json:"nox_kg"`
	PMKg  float64 `json:"pm_kg"`
}
