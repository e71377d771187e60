// Package database manages the MongoDB client shared by all repositories.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"warmshare/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the application.
const (
	UsersCollection     = "users"
	ClothesCollection   = "clothes"
	DonationsCollection = "donations"
	CommentsCollection  = "comments"
)

// Connect establishes the MongoDB connection and returns the client and the
// application database handle. The client is shared by every repository for
// the lifetime of the process.
func Connect(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB")
	return client, client.Database(cfg.DBName), nil
}
