package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/streetlist/places-api/schema"
)

// geoNearAggregate builds the $geoNear stage of a proximity query. It must
// be the first stage of its pipeline; distances come back in meters on the
// distance field, ascending, computed on a spherical earth.
func geoNearAggregate(cords schema.Coordinates, maxDistance float64) bson.D {
	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near":          bson.M{"type": "Point", "coordinates": bson.A{cords.Longitude, cords.Latitude}},
		"distanceField": "distance",
		"maxDistance":   maxDistance,
		"key":           "coords",
		"spherical":     true,
	}}}
}

func limitAggregate(number int64) bson.D {
	return bson.D{{Key: "$limit", Value: number}}
}

// AggregationMatch helps generate aggregation object for $match
func AggregationMatch(matchCondition bson.M) bson.D {
	match := bson.D{}
	for k, v := range matchCondition {
		match = append(match, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$match", Value: match},
	}
}

// AggregationProject helps generate aggregation object for $project
func AggregationProject(projectCondition bson.M) bson.D {
	project := bson.D{}
	for k, v := range projectCondition {
		project = append(project, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$project", Value: project},
	}
}
