package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var Mongo *mongo.Database

// ConnectMongo connects to MongoDB when MONGO_URI is configured.
// It returns nil without connecting otherwise.
func ConnectMongo(ctx context.Context, cfg *Config) error {
	if cfg.MongoURI == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %v", err)
	}

	Mongo = client.Database(cfg.MongoDB)
	return nil
}

// DisconnectMongo closes the Mongo client if one is open
func DisconnectMongo(ctx context.Context) error {
	if Mongo == nil {
		return nil
	}
	return Mongo.Client().Disconnect(ctx)
}
