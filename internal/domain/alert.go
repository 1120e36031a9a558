package domain

// AlertType - category of a hazard alert along a route
type AlertType string

const (
	AlertAccident     AlertType = "accident"
	AlertConstruction AlertType = "construction"
	AlertWeather      AlertType = "weather"
	AlertBrokenRoad   AlertType = "broken_road"
	AlertRestriction  AlertType = "restriction"
	AlertTraffic      AlertType = "traffic"
)

// ImpactLevel - severity of a hazard alert
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// HazardAlert - advisory attached to a point along the route.
// ProgressMark places the alert on the normalized [0,1] route axis.
// The list bound to a navigation run is read-only for its duration.
type HazardAlert struct {
	Type         AlertType   `json:"type"`
	Title        string      `json:"title"`
	Location     string      `json:"location"`
	Detail       string      `json:"detail"`
	Impact       ImpactLevel `json:"impact"`
	ProgressMark float64     `json:"progress_mark"`
}
