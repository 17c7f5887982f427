package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streetlist/places-api/schema"
)

func TestDistanceZero(t *testing.T) {
	p := schema.Coordinates{Longitude: -0.1, Latitude: 51.5}
	assert.Equal(t, float64(0), Distance(p, p))
}

func TestDistanceSymmetric(t *testing.T) {
	a := schema.Coordinates{Longitude: -0.1, Latitude: 51.5}
	b := schema.Coordinates{Longitude: -0.1001, Latitude: 51.5001}

	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceNearbyPoint(t *testing.T) {
	a := schema.Coordinates{Longitude: -0.1, Latitude: 51.5}
	b := schema.Coordinates{Longitude: -0.1001, Latitude: 51.5001}

	d := Distance(a, b)
	assert.Greater(t, d, float64(0))
	assert.Less(t, d, float64(50))
}

func TestDistanceKnownCities(t *testing.T) {
	london := schema.Coordinates{Longitude: -0.1278, Latitude: 51.5074}
	paris := schema.Coordinates{Longitude: 2.3522, Latitude: 48.8566}

	// roughly 344 km between the two city centers
	d := Distance(london, paris)
	assert.InDelta(t, 344000, d, 5000)
}
