package api

import (
	"fmt"
	"math"
	"strconv"

	"github.com/streetlist/places-api/schema"
)

// parseCoordinates will parse the lng and lat query parameters of a
// proximity query. Both are required and must be numeric and in range.
func parseCoordinates(lngStr, latStr string) (schema.Coordinates, error) {
	if lngStr == "" || latStr == "" {
		return schema.Coordinates{}, fmt.Errorf("lng and lat query parameters are required")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return schema.Coordinates{}, err
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return schema.Coordinates{}, err
	}

	cords := schema.Coordinates{
		Longitude: lng,
		Latitude:  lat,
	}
	if !cords.Valid() {
		return schema.Coordinates{}, fmt.Errorf("coordinates out of range")
	}

	return cords, nil
}

// formatDistance renders a distance as a whole number of meters.
func formatDistance(meters float64) string {
	return fmt.Sprintf("%dm", int64(math.Round(meters)))
}
