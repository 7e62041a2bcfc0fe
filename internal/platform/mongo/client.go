// Package mongo provides MongoDB implementations of the store interfaces
// and the shared client bootstrap.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portfolioz/server/internal/config"
)

// Collection names, one per entity.
const (
	usersCollection        = "user"
	projectsCollection     = "project"
	skillsCollection       = "skill"
	testimonialsCollection = "testimonial"
	blogsCollection        = "blog"
	portfoliosCollection   = "portfolio"
)

// connectTimeout bounds the startup connection attempt; a store that cannot
// be reached at startup is fatal, so there is no point waiting longer.
const connectTimeout = 10 * time.Second

// Connect establishes the process-wide MongoDB client and verifies the
// connection with a ping. The client is created once at startup and shared
// by all stores; the caller disconnects it during shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on portfolio email is what makes concurrent first publishes
// deterministic: one insert wins, the other surfaces a duplicate-key error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(portfoliosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create portfolio email index: %w", err)
	}
	return nil
}
