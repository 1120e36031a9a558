package domain

import "fmt"

// Coordinate - geographic point in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Label formats the coordinate as a human-readable string,
// used as the reverse-geocoding fallback label.
func (c Coordinate) Label() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lon)
}

// RouteObjective - optimization objective for route selection
type RouteObjective string

const (
	ObjectiveFastest  RouteObjective = "fastest"
	ObjectiveEconomic RouteObjective = "economic"
	ObjectiveEco      RouteObjective = "eco"
	ObjectiveTruck    RouteObjective = "truck"
)

// ParseObjective maps a request string to a known objective.
// Unknown values fall back to fastest.
func ParseObjective(s string) RouteObjective {
	switch RouteObjective(s) {
	case ObjectiveFastest, ObjectiveEconomic, ObjectiveEco, ObjectiveTruck:
		return RouteObjective(s)
	default:
		return ObjectiveFastest
	}
}

// RouteGeometry - full geometry of a route between two points.
// Coordinates always holds at least two points; the first is the origin
// and the last is the destination.
type RouteGeometry struct {
	Coordinates     []Coordinate `json:"coordinates"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	StepCount       int          `json:"step_count"`
	Synthetic       bool         `json:"synthetic"`
}

// DistanceKm returns the route distance in kilometers.
func (r *RouteGeometry) DistanceKm() float64 {
	return r.DistanceMeters / 1000.0
}

// RouteSummary - derived per-objective snapshot of a route.
// Recomputed from scratch on every change, never mutated in place.
type RouteSummary struct {
	Objective  RouteObjective `json:"objective"`
	DistanceKm float64        `json:"distance_km"`
	ETAMinutes float64        `json:"eta_minutes"`
	FuelCost   float64        `json:"fuel_cost"`
	CO2Kg      float64        `json:"co2_kg"`
}

// Place - a named geocoding result
type Place struct {
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Position Coordinate `json:"position"`
}
