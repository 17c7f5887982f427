package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoLogPrefix = "mongo"
)

var defaultTimeout = 5 * time.Second

// PlacesCore is the storage interface consumed by the API boundary.
type PlacesCore interface {
	Healther
	Location
	Review
}

type Healther interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a PlacesCore backed by the given mongodb client.
func NewMongoStore(client *mongo.Client, database string) PlacesCore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, readpref.Primary())
}
