// Command seed loads a set of fixture locations into mongodb so the
// proximity queries have something to return during development.
package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/streetlist/places-api/schema"
	"github.com/streetlist/places-api/store"
)

type fixture struct {
	name         string
	address      string
	facilities   []string
	cords        schema.Coordinates
	openingTimes []schema.OpeningTime
}

var fixtures = []fixture{
	{
		name:       "Starcups",
		address:    "125 High Street, Reading, RG6 1PS",
		facilities: []string{"Hot drinks", "Food", "Premium wifi"},
		cords:      schema.Coordinates{Longitude: -0.9690884, Latitude: 51.455041},
		openingTimes: []schema.OpeningTime{
			{Days: "Monday - Friday", Opening: "7:00am", Closing: "7:00pm"},
			{Days: "Saturday", Opening: "8:00am", Closing: "5:00pm"},
			{Days: "Sunday", Closed: true},
		},
	},
	{
		name:       "Cafe Hero",
		address:    "27 Queen Victoria Street, Reading, RG1 1TT",
		facilities: []string{"Hot drinks", "Food", "Free wifi"},
		cords:      schema.Coordinates{Longitude: -0.9700884, Latitude: 51.455641},
		openingTimes: []schema.OpeningTime{
			{Days: "Monday - Friday", Opening: "7:00am", Closing: "10:00pm"},
			{Days: "Saturday - Sunday", Opening: "8:00am", Closing: "10:00pm"},
		},
	},
	{
		name:       "Burger Queen",
		address:    "47 Broad Street, Reading, RG1 1QV",
		facilities: []string{"Food", "Premium wifi"},
		cords:      schema.Coordinates{Longitude: -0.9730884, Latitude: 51.453841},
		openingTimes: []schema.OpeningTime{
			{Days: "Monday - Sunday", Opening: "11:00am", Closing: "11:00pm"},
		},
	},
}

func main() {
	var connURI, database string
	flag.StringVar(&connURI, "conn", "mongodb://127.0.0.1:27017", "mongodb connection URI")
	flag.StringVar(&database, "database", "places", "mongodb database name")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongodb")
	}
	defer client.Disconnect(ctx)

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to ensure mongodb indexes")
	}

	mongoStore := store.NewMongoStore(client, database)

	for _, f := range fixtures {
		location, err := mongoStore.CreateLocation(f.name, f.address, f.facilities, f.cords, f.openingTimes)
		if err != nil {
			log.WithError(err).WithField("name", f.name).Fatal("fail to seed location")
		}
		log.WithFields(log.Fields{
			"name": location.Name,
			"id":   location.ID.Hex(),
		}).Info("seeded location")
	}
}
