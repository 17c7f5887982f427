package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/streetlist/places-api/schema"
	"github.com/streetlist/places-api/store"
)

func TestCreateReview(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	review := &schema.Review{
		ID:         primitive.NewObjectID(),
		Author:     "Simon",
		Rating:     4,
		ReviewText: "great coffee",
	}

	gomock.InOrder(
		mockStore.EXPECT().
			AddReview(locationID, "Simon", 4, "great coffee").
			Return(review, nil),
		mockStore.EXPECT().
			UpdateAverageRating(locationID).
			Return(nil),
	)

	w := performRequest(router, "POST", "/api/locations/"+locationID.Hex()+"/reviews",
		`{"author":"Simon","rating":4,"reviewText":"great coffee"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp schema.Review
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, review.ID, resp.ID)
	assert.Equal(t, 4, resp.Rating)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	mockStore.EXPECT().
		AddReview(locationID, "Simon", 9, "way too good").
		Return(nil, store.ErrInvalidRating)

	w := performRequest(router, "POST", "/api/locations/"+locationID.Hex()+"/reviews",
		`{"author":"Simon","rating":9,"reviewText":"way too good"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewLocationMissing(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	mockStore.EXPECT().
		AddReview(locationID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrLocationNotFound)

	w := performRequest(router, "POST", "/api/locations/"+locationID.Hex()+"/reviews",
		`{"author":"Simon","rating":4,"reviewText":"great coffee"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// A failed rating recompute is logged, not surfaced; the review mutation
// already happened so the request still succeeds.
func TestCreateReviewSucceedsWhenRatingUpdateFails(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	review := &schema.Review{
		ID:     primitive.NewObjectID(),
		Author: "Simon",
		Rating: 4,
	}

	gomock.InOrder(
		mockStore.EXPECT().
			AddReview(locationID, "Simon", 4, "").
			Return(review, nil),
		mockStore.EXPECT().
			UpdateAverageRating(locationID).
			Return(assert.AnError),
	)

	w := performRequest(router, "POST", "/api/locations/"+locationID.Hex()+"/reviews",
		`{"author":"Simon","rating":4}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReadReview(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()
	location := &schema.Location{ID: locationID, Name: "Starcups"}
	review := &schema.Review{ID: reviewID, Author: "Simon", Rating: 4}

	mockStore.EXPECT().GetReview(locationID, reviewID).Return(location, review, nil)

	w := performRequest(router, "GET",
		"/api/locations/"+locationID.Hex()+"/reviews/"+reviewID.Hex(), "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp reviewReadResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, locationID.Hex(), resp.Location.ID)
	assert.Equal(t, "Starcups", resp.Location.Name)
	assert.Equal(t, reviewID, resp.Review.ID)
}

func TestReadReviewNotFoundKinds(t *testing.T) {
	notFoundErrors := []error{
		store.ErrLocationNotFound,
		store.ErrNoReviews,
		store.ErrReviewNotFound,
	}

	for _, notFound := range notFoundErrors {
		router, mockStore := newTestServer(t)

		locationID := primitive.NewObjectID()
		reviewID := primitive.NewObjectID()
		mockStore.EXPECT().GetReview(locationID, reviewID).Return(nil, nil, notFound)

		w := performRequest(router, "GET",
			"/api/locations/"+locationID.Hex()+"/reviews/"+reviewID.Hex(), "")

		assert.Equal(t, http.StatusNotFound, w.Code, notFound.Error())
	}
}

func TestUpdateReview(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()
	review := &schema.Review{ID: reviewID, Author: "Simon", Rating: 5, ReviewText: "even better"}

	gomock.InOrder(
		mockStore.EXPECT().
			UpdateReview(locationID, reviewID, "Simon", 5, "even better").
			Return(review, nil),
		mockStore.EXPECT().
			UpdateAverageRating(locationID).
			Return(nil),
	)

	w := performRequest(router, "PUT",
		"/api/locations/"+locationID.Hex()+"/reviews/"+reviewID.Hex(),
		`{"author":"Simon","rating":5,"reviewText":"even better"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp schema.Review
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Rating)
}

func TestUpdateReviewNotFound(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()
	mockStore.EXPECT().
		UpdateReview(locationID, reviewID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrReviewNotFound)

	w := performRequest(router, "PUT",
		"/api/locations/"+locationID.Hex()+"/reviews/"+reviewID.Hex(),
		`{"author":"Simon","rating":5}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReview(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()

	gomock.InOrder(
		mockStore.EXPECT().DeleteReview(locationID, reviewID).Return(nil),
		mockStore.EXPECT().UpdateAverageRating(locationID).Return(nil),
	)

	w := performRequest(router, "DELETE",
		"/api/locations/"+locationID.Hex()+"/reviews/"+reviewID.Hex(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteReviewNotFound(t *testing.T) {
	router, mockStore := newTestServer(t)

	locationID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()
	mockStore.EXPECT().DeleteReview(locationID, reviewID).Return(store.ErrReviewNotFound)

	w := performRequest(router, "DELETE",
		"/api/locations/"+locationID.Hex()+"/reviews/"+reviewID.Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
