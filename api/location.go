package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/streetlist/places-api/geo"
	"github.com/streetlist/places-api/schema"
	"github.com/streetlist/places-api/store"
)

type locationRequest struct {
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	Facilities   []string             `json:"facilities"`
	Coordinates  *schema.Coordinates  `json:"coordinates"`
	OpeningTimes []schema.OpeningTime `json:"openingTimes"`
}

type locationListItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     float64  `json:"rating"`
	Facilities []string `json:"facilities"`
	Distance   string   `json:"distance"`
}

type locationReadResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Reviews []schema.Review `json:"reviews"`
}

// resolveCoordinates returns the coordinate pair for a location request.
// A request without coordinates but with an address is resolved through
// the configured searcher; anything else is a validation failure.
func (s *Server) resolveCoordinates(c *gin.Context, body locationRequest) (schema.Coordinates, bool) {
	if body.Coordinates != nil {
		if !body.Coordinates.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
			return schema.Coordinates{}, false
		}
		return *body.Coordinates, true
	}

	if body.Address == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		return schema.Coordinates{}, false
	}

	cords, err := geo.LookupCoordinate(body.Address)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnresolvedAddress, err)
		return schema.Coordinates{}, false
	}

	return cords, true
}

func (s *Server) createLocation(c *gin.Context) {
	var body locationRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	cords, ok := s.resolveCoordinates(c, body)
	if !ok {
		return
	}

	location, err := s.mongoStore.CreateLocation(body.Name, body.Address, body.Facilities, cords, body.OpeningTimes)
	if err != nil {
		switch err {
		case store.ErrMissingLocationName:
			abortWithEncoding(c, http.StatusBadRequest, errorMissingName)
		case store.ErrInvalidCoordinates:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (s *Server) listByDistance(c *gin.Context) {
	cords, err := parseCoordinates(c.Query("lng"), c.Query("lat"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	locations, err := s.mongoStore.NearbyLocations(cords, s.maxDistance, s.resultLimit)
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorNearbyQuery, err)
		return
	}

	items := make([]locationListItem, 0, len(locations))
	for _, location := range locations {
		var distance float64
		if location.Distance != nil {
			distance = *location.Distance
		}

		items = append(items, locationListItem{
			ID:         location.ID.Hex(),
			Name:       location.Name,
			Address:    location.Address,
			Rating:     location.Rating,
			Facilities: location.Facilities,
			Distance:   formatDistance(distance),
		})
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) readLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	location, err := s.mongoStore.GetLocation(locationID)
	if err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	reviews := location.Reviews
	if reviews == nil {
		reviews = []schema.Review{}
	}

	c.JSON(http.StatusOK, locationReadResponse{
		ID:      location.ID.Hex(),
		Name:    location.Name,
		Address: location.Address,
		Reviews: reviews,
	})
}

func (s *Server) updateLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var body locationRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	cords, ok := s.resolveCoordinates(c, body)
	if !ok {
		return
	}

	location, err := s.mongoStore.UpdateLocation(locationID, body.Name, body.Address, body.Facilities, cords, body.OpeningTimes)
	if err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation)
		case store.ErrMissingLocationName:
			abortWithEncoding(c, http.StatusBadRequest, errorMissingName)
		case store.ErrInvalidCoordinates:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, location)
}

func (s *Server) deleteLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeleteLocation(locationID); err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
