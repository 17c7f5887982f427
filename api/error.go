package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorUnknownLocation    = errorResponse{1100, "location not found"}
	errorUnknownReview      = errorResponse{1101, "review not found"}
	errorNoReviews          = errorResponse{1102, "location has no reviews"}
	errorInvalidCoordinates = errorResponse{1103, "coordinates out of range"}
	errorInvalidRating      = errorResponse{1104, "review rating out of range"}
	errorMissingName        = errorResponse{1105, "location name is required"}
	errorUnresolvedAddress  = errorResponse{1106, "address can not be resolved"}
	errorNearbyQuery        = errorResponse{1107, "nearby location query failed"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}
