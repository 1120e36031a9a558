package domain

import "time"

// EnvironmentSnapshot - weather and traffic conditions feeding the
// cost model. TrafficMultiplier is always >= 1.0.
type EnvironmentSnapshot struct {
	Weather           string    `json:"weather"`
	WeatherImpact     float64   `json:"weather_impact"`
	Traffic           string    `json:"traffic"`
	TrafficMultiplier float64   `json:"traffic_multiplier"`
	TemperatureC      float64   `json:"temperature_c"`
	HumidityPct       float64   `json:"humidity_pct"`
	WindSpeedKmh      float64   `json:"wind_speed_kmh"`
	SampledAt         time.Time `json:"sampled_at"`
}
