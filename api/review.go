package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/streetlist/places-api/schema"
	"github.com/streetlist/places-api/store"
)

type reviewRequest struct {
	Author     string `json:"author"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

type reviewLocationInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type reviewReadResponse struct {
	Location reviewLocationInfo `json:"location"`
	Review   *schema.Review     `json:"review"`
}

// updateAverageRating recomputes the cached rating after a successful
// review mutation. The mutation already happened; a failed recompute is
// reported through the log, never as the request error.
func (s *Server) updateAverageRating(locationID primitive.ObjectID) {
	if err := s.mongoStore.UpdateAverageRating(locationID); err != nil {
		log.WithFields(log.Fields{
			"prefix":      "api",
			"location ID": locationID.Hex(),
		}).WithError(err).Error("fail to update average rating")
	}
}

func reviewNotFoundEncoding(err error) (errorResponse, bool) {
	switch err {
	case store.ErrLocationNotFound:
		return errorUnknownLocation, true
	case store.ErrNoReviews:
		return errorNoReviews, true
	case store.ErrReviewNotFound:
		return errorUnknownReview, true
	}
	return errorResponse{}, false
}

func (s *Server) createReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var body reviewRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	review, err := s.mongoStore.AddReview(locationID, body.Author, body.Rating, body.ReviewText)
	if err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation)
		case store.ErrInvalidRating:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.updateAverageRating(locationID)

	c.JSON(http.StatusCreated, review)
}

func (s *Server) readReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	location, review, err := s.mongoStore.GetReview(locationID, reviewID)
	if err != nil {
		if resp, ok := reviewNotFoundEncoding(err); ok {
			abortWithEncoding(c, http.StatusNotFound, resp)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, reviewReadResponse{
		Location: reviewLocationInfo{
			ID:   location.ID.Hex(),
			Name: location.Name,
		},
		Review: review,
	})
}

func (s *Server) updateReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var body reviewRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	review, err := s.mongoStore.UpdateReview(locationID, reviewID, body.Author, body.Rating, body.ReviewText)
	if err != nil {
		if err == store.ErrInvalidRating {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating)
		} else if resp, ok := reviewNotFoundEncoding(err); ok {
			abortWithEncoding(c, http.StatusNotFound, resp)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.updateAverageRating(locationID)

	c.JSON(http.StatusOK, review)
}

func (s *Server) deleteReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeleteReview(locationID, reviewID); err != nil {
		if resp, ok := reviewNotFoundEncoding(err); ok {
			abortWithEncoding(c, http.StatusNotFound, resp)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.updateAverageRating(locationID)

	c.Status(http.StatusNoContent)
}
