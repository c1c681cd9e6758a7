package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect creates a new mongo client using the provided URI.
// It pings the server to ensure the connection is valid.
// The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Use a short-lived context for the initial ping.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the application relies on.
//
// The partial unique index on bookings is what makes the availability check
// race-free: two concurrent inserts for the same (hall, date, slot) cannot
// both succeed, regardless of what the application-level pre-check saw.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("bookings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "hallId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "timeSlot", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": bson.M{"$ne": "cancelled"}}),
	})
	if err != nil {
		return fmt.Errorf("failed to create booking slot index: %w", err)
	}

	uniqueField := func(coll, field string) error {
		_, err := database.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s.%s index: %w", coll, field, err)
		}
		return nil
	}

	if err := uniqueField("halls", "name"); err != nil {
		return err
	}
	if err := uniqueField("customers", "email"); err != nil {
		return err
	}
	return uniqueField("users", "email")
}
