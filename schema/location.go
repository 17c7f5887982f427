package schema

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationCollection = "locations"
)

const (
	MinRating = 1
	MaxRating = 5
)

// GeoJSON is the indexed coordinate field of a location. Coordinates are
// stored longitude first, as mongodb expects.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Coordinates is the client-facing longitude/latitude pair.
type Coordinates struct {
	Longitude float64 `bson:"longitude" json:"lng"`
	Latitude  float64 `bson:"latitude" json:"lat"`
}

// Valid reports whether the pair is finite and inside the WGS84 bounds.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	return c.Longitude >= -180 && c.Longitude <= 180 &&
		c.Latitude >= -90 && c.Latitude <= 90
}

// NewGeoJSON builds the stored point for a coordinate pair.
func NewGeoJSON(c Coordinates) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{c.Longitude, c.Latitude},
	}
}

// Pair returns the longitude/latitude pair of a stored point.
func (g *GeoJSON) Pair() Coordinates {
	if g == nil || len(g.Coordinates) != 2 {
		return Coordinates{}
	}
	return Coordinates{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}

type OpeningTime struct {
	Days    string `bson:"days" json:"days"`
	Opening string `bson:"opening,omitempty" json:"opening,omitempty"`
	Closing string `bson:"closing,omitempty" json:"closing,omitempty"`
	Closed  bool   `bson:"closed" json:"closed"`
}

// Review is an owned child of exactly one location. It has no storage
// identity of its own; its ID is unique within the parent document.
type Review struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Author     string             `bson:"author" json:"author"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText string             `bson:"reviewText" json:"reviewText"`
	CreatedOn  time.Time          `bson:"createdOn" json:"createdOn"`
}

// ValidRating reports whether a review rating is inside the accepted range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// Location is the aggregate root. Rating is derived from the embedded
// reviews and is never set directly by a client. Distance is only populated
// by proximity queries.
type Location struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Facilities   []string           `bson:"facilities" json:"facilities"`
	Coords       *GeoJSON           `bson:"coords" json:"coords"`
	OpeningTimes []OpeningTime      `bson:"openingTimes" json:"openingTimes"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
	Rating       float64            `bson:"rating" json:"rating"`
	Distance     *float64           `bson:"distance,omitempty" json:"distance,omitempty"`
}
