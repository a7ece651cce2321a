package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Jakarta Monas to Bandung Gedung Sate, roughly 118 km
	monas := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}
	gedungSate := GeoPoint{Latitude: -6.902477, Longitude: 107.618781}

	distance, err := DistanceKm(monas, gedungSate)

	assert.NoError(t, err)
	assert.InDelta(t, 118, distance, 3)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	point := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}

	distance, err := DistanceKm(point, point)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, distance)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}
	b := GeoPoint{Latitude: -6.185392, Longitude: 106.837153}

	forward, err := DistanceKm(a, b)
	assert.NoError(t, err)
	backward, err := DistanceKm(b, a)
	assert.NoError(t, err)

	assert.InDelta(t, forward, backward, 1e-12)
}

func TestDistanceKm_InvalidCoordinate(t *testing.T) {
	valid := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}

	tests := []struct {
		name  string
		point GeoPoint
	}{
		{"latitude too high", GeoPoint{Latitude: 90.1, Longitude: 0}},
		{"latitude too low", GeoPoint{Latitude: -90.1, Longitude: 0}},
		{"longitude too high", GeoPoint{Latitude: 0, Longitude: 180.1}},
		{"longitude too low", GeoPoint{Latitude: 0, Longitude: -180.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DistanceKm(valid, tt.point)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)

			_, err = DistanceKm(tt.point, valid)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestGeoPoint_Valid_Boundaries(t *testing.T) {
	assert.True(t, GeoPoint{Latitude: 90, Longitude: 180}.Valid())
	assert.True(t, GeoPoint{Latitude: -90, Longitude: -180}.Valid())
	assert.False(t, GeoPoint{Latitude: 90.000001, Longitude: 0}.Valid())
	assert.False(t, GeoPoint{Latitude: 0, Longitude: -180.000001}.Valid())
}

func TestNormalizeBearing(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{370, 10},
		{720, 0},
		{-90, 270},
		{-360, 0},
		{-450, 270},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeBearing(tt.in), 1e-9, "input %v", tt.in)
	}
}

func TestEncodePoint_RoundTrip(t *testing.T) {
	point := GeoPoint{Latitude: -6.175392, Longitude: 106.827153}

	hash := EncodePoint(point, 7)
	assert.Len(t, hash, 7)

	lat, lon := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, lat, 0.001)
	assert.InDelta(t, point.Longitude, lon, 0.001)
}
