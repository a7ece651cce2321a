package utils

import (
	"errors"
	"math"

	"github.com/mmcloughlin/geohash"
)

// ErrInvalidCoordinate is returned when a latitude or longitude is outside
// its valid range
var ErrInvalidCoordinate = errors.New("coordinate out of range")

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the point lies within valid coordinate ranges
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula
func DistanceKm(point1, point2 GeoPoint) (float64, error) {
	if !point1.Valid() || !point2.Valid() {
		return 0, ErrInvalidCoordinate
	}

	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c, nil
}

// NormalizeBearing wraps a heading in degrees into [0, 360)
func NormalizeBearing(deg float64) float64 {
	normalized := math.Mod(deg, 360)
	if normalized < 0 {
		normalized += 360
	}
	return normalized
}

// EncodePoint converts a point to a geohash string
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
