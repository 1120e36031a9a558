package dto

import "time"

// Point - coordinate pair in a request body
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// RouteRequest - compute a route between two points
type RouteRequest struct {
	Origin       Point   `json:"origin" validate:"required"`
	Destination  Point   `json:"destination" validate:"required"`
	Objective    string  `json:"objective" validate:"omitempty,oneof=fastest economic eco truck"`
	VehicleID    string  `json:"vehicle_id,omitempty"`
	Alternatives *bool   `json:"alternatives,omitempty"`
	AgeYears     float64 `json:"age_years" validate:"omitempty,min=0,max=60"`
	LoadTons     float64 `json:"load_tons" validate:"omitempty,min=0,max=100"`
}

// WantAlternatives defaults the alternatives flag to true when the
// request leaves it unset.
func (r *RouteRequest) WantAlternatives() bool {
	return r.Alternatives == nil || *r.Alternatives
}

// SummariesRequest - per-objective route summaries for one trip
type SummariesRequest struct {
	Origin      Point  `json:"origin" validate:"required"`
	Destination Point  `json:"destination" validate:"required"`
	VehicleID   string `json:"vehicle_id,omitempty"`
}

// ReverseGeocodeRequest - resolve a coordinate to a display name
type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// ChargingPlanRequest - charging need + schedule advisory for a trip
type ChargingPlanRequest struct {
	Origin                Point      `json:"origin" validate:"required"`
	Destination           Point      `json:"destination" validate:"required"`
	VehicleID             string     `json:"vehicle_id,omitempty"`
	CurrentBatteryPercent float64    `json:"current_battery_percent" validate:"min=0,max=100"`
	Departure             *time.Time `json:"departure,omitempty"`
}

// StartNavigationRequest - begin a simulated navigation run
type StartNavigationRequest struct {
	Origin      Point  `json:"origin" validate:"required"`
	Destination Point  `json:"destination" validate:"required"`
	Objective   string `json:"objective" validate:"omitempty,oneof=fastest economic eco truck"`
	VehicleID   string `json:"vehicle_id,omitempty"`
}
