package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streetlist/places-api/store"
)

// Server serves the location catalog API. It is the only component
// external callers reach; everything it exposes is composed from the
// mongo store and the geo searcher.
type Server struct {
	server *http.Server

	mongoClient *mongo.Client
	mongoStore  store.PlacesCore

	// proximity query policy
	maxDistance float64
	resultLimit int64

	traceMode bool
}

func NewServer(mongoClient *mongo.Client, mongoStore store.PlacesCore, maxDistance float64, resultLimit int64) *Server {
	return &Server{
		mongoClient: mongoClient,
		mongoStore:  mongoStore,
		maxDistance: maxDistance,
		resultLimit: resultLimit,
	}
}

// SetTraceMode enables request dumping for debugging.
func (s *Server) SetTraceMode(enable bool) {
	s.traceMode = enable
}

func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	api := r.Group("/api")

	locations := api.Group("/locations")
	{
		locations.POST("", s.createLocation)
		locations.GET("", s.listByDistance)
		locations.GET("/:locationID", s.readLocation)
		locations.PUT("/:locationID", s.updateLocation)
		locations.DELETE("/:locationID", s.deleteLocation)
	}

	reviews := api.Group("/locations/:locationID/reviews")
	{
		reviews.POST("", s.createReview)
		reviews.GET("/:reviewID", s.readReview)
		reviews.PUT("/:reviewID", s.updateReview)
		reviews.DELETE("/:reviewID", s.deleteReview)
	}

	return r
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
