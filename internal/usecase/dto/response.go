package dto

import "github.com/route-optimizer/internal/domain"

// RouteResponse - computed route with its derived artifacts
type RouteResponse struct {
	Route            *domain.RouteGeometry       `json:"route"`
	Summary          domain.RouteSummary         `json:"summary"`
	Emission         domain.EmissionEstimate     `json:"emission"`
	Alerts           []domain.HazardAlert        `json:"alerts"`
	Advice           string                      `json:"advice"`
	Environment      *domain.EnvironmentSnapshot `json:"environment"`
	OriginLabel      string                      `json:"origin_label"`
	DestinationLabel string                      `json:"destination_label"`
}

// SummariesResponse - one summary per objective, stable order
type SummariesResponse struct {
	Summaries []domain.RouteSummary `json:"summaries"`
}

// SearchResponse - geocoding search results
type SearchResponse struct {
	Places []domain.Place `json:"places"`
	Total  int            `json:"total"`
}

// ReverseGeocodeResponse - display name for a coordinate
type ReverseGeocodeResponse struct {
	Label string `json:"label"`
}

// ChargingPlanResponse - charging need and schedule advisory
type ChargingPlanResponse struct {
	Need domain.ChargingNeed `json:"need"`
	Plan domain.ChargingPlan `json:"plan"`
}

// StationsResponse - charging stations near a point
type StationsResponse struct {
	Stations []domain.ChargingStation `json:"stations"`
}

// VehiclesResponse - vehicle profile catalog
type VehiclesResponse struct {
	Vehicles []domain.VehicleProfile `json:"vehicles"`
}

// NavigationResponse - navigation session state snapshot
type NavigationResponse struct {
	SessionID string                 `json:"session_id"`
	State     domain.NavigationState `json:"state"`
}
