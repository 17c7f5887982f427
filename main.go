package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/streetlist/places-api/api"
	"github.com/streetlist/places-api/geo"
	"github.com/streetlist/places-api/schema"
	"github.com/streetlist/places-api/store"
)

func initializeConfig(file string) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.WithError(err).Fatal("fail to read config file")
		}
	}

	viper.SetEnvPrefix("places")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("listen", ":8080")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "places")
	viper.SetDefault("nearby.max_distance", 20000)
	viper.SetDefault("nearby.limit", 10)
	viper.SetDefault("nominatim.endpoint", "https://nominatim.openstreetmap.org")
	viper.SetDefault("log.level", "info")
}

func initializeLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "config file path")
	flag.Parse()

	initializeConfig(configFile)
	initializeLog()

	if viper.GetBool("debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongodb")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to ensure mongodb indexes")
	}

	geo.SetLocationSearcher(geo.NewNominatimSearcher(viper.GetString("nominatim.endpoint")))

	mongoStore := store.NewMongoStore(client, database)

	server := api.NewServer(client, mongoStore,
		viper.GetFloat64("nearby.max_distance"),
		viper.GetInt64("nearby.limit"))
	server.SetTraceMode(viper.GetBool("trace"))

	log.WithField("listen", viper.GetString("listen")).Info("starting places api server")
	go func() {
		if err := server.Run(viper.GetString("listen")); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down places api server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("fail to shut down server gracefully")
	}
}
