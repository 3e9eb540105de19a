package main

import (
	"context"

	"github.com/freshcart/commerce-service/config"
	"github.com/freshcart/commerce-service/internal/app"
	"github.com/freshcart/commerce-service/internal/infrastructure/database/mongodb"
	"github.com/freshcart/commerce-service/internal/infrastructure/mediahost"
	"github.com/rs/zerolog/log"
)

func main() {
	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	media, err := mediahost.CreateCloudinaryMediaHost(
		conf.CloudinaryConfig.CloudName,
		conf.CloudinaryConfig.APIKey,
		conf.CloudinaryConfig.APISecret,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize media host")
	}

	a := app.App{
		DB:     db,
		Media:  media,
		Config: conf,
	}
	a.Start()
}
