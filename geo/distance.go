package geo

import (
	"math"

	"github.com/streetlist/places-api/schema"
)

// earthRadius in meters, the sphere mongodb uses for $geoNear.
const earthRadius = 6378137.0

// Distance returns the great-circle distance between two coordinate pairs
// in meters, on a spherical earth. Proximity ranking must agree with this
// model, so tests use it to cross-check stored distances.
func Distance(a, b schema.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
