package domain

import "math"

// Immutable geographic coordinates (longitude, latitude).
// Absent coordinates are represented as a nil *Coordinates, never the zero
// value: (0, 0) is a real point in the Gulf of Guinea, not "unknown".
type Coordinates struct {
	Lon float64
	Lat float64
}

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using the
// Haversine formula. Symmetric, non-negative, zero for identical points.
func DistanceKm(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
