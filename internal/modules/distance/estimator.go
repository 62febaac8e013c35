// Package distance — estimator contains the pure great-circle fallback math.
package distance

import (
	"math"

	"farecast/internal/types"
)

const (
	earthRadiusKm = 6371.0

	// roadCircuityFactor corrects the straight-line distance upward;
	// real road distance is consistently longer than the great circle.
	roadCircuityFactor = 1.35
)

// Estimate returns an approximate road distance in kilometres between two
// coordinates: the haversine great-circle distance scaled by the circuity
// factor, rounded to 2 decimal places. Pure; callers guarantee well-formed
// coordinates by construction.
func Estimate(a, b types.Coordinate) float64 {
	return round2(haversineKm(a.Lat, a.Lng, b.Lat, b.Lng) * roadCircuityFactor)
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
