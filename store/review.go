package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streetlist/places-api/schema"
	"github.com/streetlist/places-api/score"
)

type Review interface {
	AddReview(locationID primitive.ObjectID, author string, rating int, reviewText string) (*schema.Review, error)
	GetReview(locationID, reviewID primitive.ObjectID) (*schema.Location, *schema.Review, error)
	UpdateReview(locationID, reviewID primitive.ObjectID, author string, rating int, reviewText string) (*schema.Review, error)
	DeleteReview(locationID, reviewID primitive.ObjectID) error
	UpdateAverageRating(locationID primitive.ObjectID) error
}

// AddReview appends a review to the owning location. The push preserves
// insertion order, so concurrent adds to the same location commute instead
// of overwriting each other.
func (m *mongoDB) AddReview(locationID primitive.ObjectID, author string, rating int, reviewText string) (*schema.Review, error) {
	if !schema.ValidRating(rating) {
		return nil, ErrInvalidRating
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	review := schema.Review{
		ID:         primitive.NewObjectID(),
		Author:     author,
		Rating:     rating,
		ReviewText: reviewText,
		CreatedOn:  time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	query := bson.M{"_id": locationID}
	update := bson.M{"$push": bson.M{"reviews": review}}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location ID": locationID.String(),
			"error":       err,
		}).Error("add review")
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrLocationNotFound
	}

	return &review, nil
}

// GetReview finds one review inside its owning location. The three not
// found cases are distinguished so the caller can report which part of the
// path was missing.
func (m *mongoDB) GetReview(locationID, reviewID primitive.ObjectID) (*schema.Location, *schema.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	pipeline := mongo.Pipeline{
		AggregationMatch(bson.M{"_id": locationID}),
		AggregationProject(bson.M{"name": 1, "reviews": 1}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, nil, err
	}

	var locations []schema.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, nil, err
	}
	if len(locations) == 0 {
		return nil, nil, ErrLocationNotFound
	}

	location := locations[0]
	if len(location.Reviews) == 0 {
		return nil, nil, ErrNoReviews
	}

	for i := range location.Reviews {
		if location.Reviews[i].ID == reviewID {
			return &location, &location.Reviews[i], nil
		}
	}

	return nil, nil, ErrReviewNotFound
}

// UpdateReview replaces author, rating and text of one review in place,
// leaving the order of its siblings untouched.
func (m *mongoDB) UpdateReview(locationID, reviewID primitive.ObjectID, author string, rating int, reviewText string) (*schema.Review, error) {
	if !schema.ValidRating(rating) {
		return nil, ErrInvalidRating
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	query := bson.M{
		"_id":         locationID,
		"reviews._id": reviewID,
	}
	update := bson.M{
		"$set": bson.M{
			"reviews.$.author":     author,
			"reviews.$.rating":     rating,
			"reviews.$.reviewText": reviewText,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location ID": locationID.String(),
			"review ID":   reviewID.String(),
			"error":       err,
		}).Error("update review")
		return nil, err
	}
	if result.MatchedCount == 0 {
		// tell a missing location apart from a missing review
		_, _, err := m.GetReview(locationID, reviewID)
		if err != nil {
			return nil, err
		}
		return nil, ErrReviewNotFound
	}

	_, review, err := m.GetReview(locationID, reviewID)
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes exactly one review by identity.
func (m *mongoDB) DeleteReview(locationID, reviewID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	query := bson.M{
		"_id":         locationID,
		"reviews._id": reviewID,
	}
	update := bson.M{"$pull": bson.M{"reviews": bson.M{"_id": reviewID}}}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location ID": locationID.String(),
			"review ID":   reviewID.String(),
			"error":       err,
		}).Error("delete review")
		return err
	}
	if result.MatchedCount == 0 {
		_, _, err := m.GetReview(locationID, reviewID)
		if err != nil {
			return err
		}
		return ErrReviewNotFound
	}

	return nil
}

// UpdateAverageRating recomputes the cached rating of a location from its
// current review set and persists it. The call is idempotent for a given
// review snapshot and safe to repeat.
func (m *mongoDB) UpdateAverageRating(locationID primitive.ObjectID) error {
	location, err := m.GetLocation(locationID)
	if err != nil {
		return err
	}

	rating := score.AverageRating(location.Reviews)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": locationID}, bson.M{
		"$set": bson.M{"rating": rating},
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location ID": locationID.String(),
			"error":       err,
		}).Error("update average rating")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrLocationNotFound
	}

	log.WithFields(log.Fields{
		"prefix":      mongoLogPrefix,
		"location ID": locationID.String(),
		"rating":      rating,
	}).Debug("average rating updated")

	return nil
}
