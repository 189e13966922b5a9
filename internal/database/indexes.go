package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureCustomerIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clerkIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "clerkId", Value: 1}},
		Options: options.Index().
			SetName("clerkId_unique").
			SetUnique(true),
	}

	log.Println("EnsureCustomerIndexes: creating clerkId_unique index")
	_, err := db.Collection("customers").Indexes().CreateOne(ctx, clerkIDIndex)
	if err != nil {
		log.Println("EnsureCustomerIndexes: clerkId index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
		{
			Keys:    bson.D{{Key: "customerClerkId", Value: 1}},
			Options: options.Index().SetName("customerClerkId_index"),
		},
	}

	log.Println("EnsureOrderIndexes: creating order indexes")
	_, err := db.Collection("orders").Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Println("EnsureOrderIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collectionsIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "collections", Value: 1}},
		Options: options.Index().SetName("collections_index"),
	}

	log.Println("EnsureProductIndexes: creating collections_index")
	_, err := db.Collection("products").Indexes().CreateOne(ctx, collectionsIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: collections index error:", err)
		return err
	}
	return nil
}

// EnsureWebhookEventIndexes backs the replay check: inserting a duplicate
// eventId fails with a duplicate-key error instead of creating a second
// order for the same provider event.
func EnsureWebhookEventIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eventIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "eventId", Value: 1}},
		Options: options.Index().
			SetName("eventId_unique").
			SetUnique(true),
	}

	log.Println("EnsureWebhookEventIndexes: creating eventId_unique index")
	_, err := db.Collection("webhook_events").Indexes().CreateOne(ctx, eventIDIndex)
	if err != nil {
		log.Println("EnsureWebhookEventIndexes: eventId index error:", err)
		return err
	}
	return nil
}
