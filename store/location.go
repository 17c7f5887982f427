package store

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/streetlist/places-api/schema"
)

var (
	ErrLocationNotFound    = fmt.Errorf("location not found")
	ErrMissingLocationName = fmt.Errorf("location name is required")
	ErrInvalidCoordinates  = fmt.Errorf("invalid coordinates")
	ErrInvalidRating       = fmt.Errorf("review rating out of range")
	ErrNoReviews           = fmt.Errorf("location has no reviews")
	ErrReviewNotFound      = fmt.Errorf("review not found")
)

type Location interface {
	CreateLocation(name, address string, facilities []string, cords schema.Coordinates, openingTimes []schema.OpeningTime) (*schema.Location, error)
	GetLocation(id primitive.ObjectID) (*schema.Location, error)
	UpdateLocation(id primitive.ObjectID, name, address string, facilities []string, cords schema.Coordinates, openingTimes []schema.OpeningTime) (*schema.Location, error)
	DeleteLocation(id primitive.ObjectID) error
	NearbyLocations(cords schema.Coordinates, maxDistance float64, limit int64) ([]schema.Location, error)
}

// CreateLocation inserts a new location document. The coordinate pair is
// validated here so an invalid location is never written, and therefore
// never reachable through the 2dsphere index.
func (m *mongoDB) CreateLocation(name, address string, facilities []string, cords schema.Coordinates, openingTimes []schema.OpeningTime) (*schema.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingLocationName
	}
	if !cords.Valid() {
		return nil, ErrInvalidCoordinates
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if facilities == nil {
		facilities = []string{}
	}
	if openingTimes == nil {
		openingTimes = []schema.OpeningTime{}
	}

	location := schema.Location{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Address:      address,
		Facilities:   facilities,
		Coords:       schema.NewGeoJSON(cords),
		OpeningTimes: openingTimes,
		Reviews:      []schema.Review{},
		Rating:       0,
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	if _, err := c.InsertOne(ctx, location); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"name":   name,
			"error":  err,
		}).Error("insert location")
		return nil, err
	}

	return &location, nil
}

// GetLocation finds a location by its ID.
func (m *mongoDB) GetLocation(id primitive.ObjectID) (*schema.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	var location schema.Location
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&location); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &location, nil
}

// UpdateLocation replaces the mutable fields of a location wholesale.
// Reviews and rating are deliberately not touched through this path.
func (m *mongoDB) UpdateLocation(id primitive.ObjectID, name, address string, facilities []string, cords schema.Coordinates, openingTimes []schema.OpeningTime) (*schema.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingLocationName
	}
	if !cords.Valid() {
		return nil, ErrInvalidCoordinates
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if facilities == nil {
		facilities = []string{}
	}
	if openingTimes == nil {
		openingTimes = []schema.OpeningTime{}
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	query := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"name":         name,
			"address":      address,
			"facilities":   facilities,
			"coords":       schema.NewGeoJSON(cords),
			"openingTimes": openingTimes,
		},
	}

	var location schema.Location
	err := c.FindOneAndUpdate(ctx, query, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location ID": id.String(),
			"error":       err,
		}).Error("update location")
		return nil, err
	}

	return &location, nil
}

// DeleteLocation removes the aggregate with all its embedded reviews.
// A second delete of the same id reports ErrLocationNotFound.
func (m *mongoDB) DeleteLocation(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location ID": id.String(),
			"error":       err,
		}).Error("delete location")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrLocationNotFound
	}

	return nil
}

// NearbyLocations answers the proximity query: locations within maxDistance
// meters of cords, ascending by spherical distance, at most limit results.
func (m *mongoDB) NearbyLocations(cords schema.Coordinates, maxDistance float64, limit int64) ([]schema.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	pipeline := mongo.Pipeline{
		geoNearAggregate(cords, maxDistance),
		limitAggregate(limit),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby locations with error: %s", err.Error())
		return nil, err
	}

	locations := []schema.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("decode nearby locations with error: %s", err.Error())
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby query gets %d locations near long:%v lat:%v",
		len(locations), cords.Longitude, cords.Latitude)

	return locations, nil
}
