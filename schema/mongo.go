package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer ensures the indexes the store relies on. The 2dsphere
// index over coords is what makes a location reachable by proximity
// queries; a location is only ever indexed through this collection, so the
// index and the store cannot disagree on existence.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

func (i *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(i.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	c := client.Database(i.database).Collection(LocationCollection)

	_, err = c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.M{"coords": "2dsphere"},
		},
		{
			Keys: bson.M{"name": 1},
		},
	})
	if err != nil {
		log.WithField("prefix", "schema").WithError(err).Error("fail to create location indexes")
		return err
	}

	return nil
}
