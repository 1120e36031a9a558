package geo

import (
	"math"

	"github.com/route-optimizer/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two points
// in kilometers.
func HaversineKm(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// BearingDegrees computes the initial great-circle bearing from one
// point to another, normalized to [0, 360).
func BearingDegrees(from, to domain.Coordinate) float64 {
	lat1 := from.Lat * math.Pi / 180.0
	lat2 := to.Lat * math.Pi / 180.0
	dLon := (to.Lon - from.Lon) * math.Pi / 180.0

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) * 180.0 / math.Pi
	return math.Mod(deg+360.0, 360.0)
}

// Interpolate returns the point a fraction t of the way from a to b.
// t is clamped to [0, 1].
func Interpolate(a, b domain.Coordinate, t float64) domain.Coordinate {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return domain.Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lon: a.Lon + (b.Lon-a.Lon)*t,
	}
}

// ValidateCoordinate checks coordinate ranges
func ValidateCoordinate(c domain.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
