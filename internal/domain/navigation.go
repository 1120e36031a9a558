package domain

import "time"

// NavigationStatus - lifecycle state of a navigation run.
// Transitions only move forward: Idle -> Running -> Completed.
type NavigationStatus string

const (
	StatusIdle      NavigationStatus = "idle"
	StatusRunning   NavigationStatus = "running"
	StatusCompleted NavigationStatus = "completed"
)

// NavigationState - snapshot of a simulated navigation run.
// Owned by a single runner; callers only ever see copies.
type NavigationState struct {
	Status              NavigationStatus `json:"status"`
	StepIndex           int              `json:"step_index"`
	Position            Coordinate       `json:"position"`
	HeadingDegrees      float64          `json:"heading_degrees"`
	SpeedKmh            float64          `json:"speed_kmh"`
	RemainingDistanceKm float64          `json:"remaining_distance_km"`
	ETA                 time.Time        `json:"eta"`
	ActiveAlert         *HazardAlert     `json:"active_alert,omitempty"`
}
