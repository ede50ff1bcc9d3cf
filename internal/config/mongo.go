package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectMongoDB(cfg *Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	// Test connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	if err := createIndexes(ctx, client, cfg.DBName); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %v", err)
	}

	return client, nil
}

// createIndexes runs under the caller's deadline so a slow server fails
// startup instead of hanging it.
func createIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	// Works: category lookups, active listings newest-first, plain
	// recency. The compound (is_active, created_at) index lets the
	// public listing filter and sort in one traversal.
	worksCollection := db.Collection("works")
	workIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err := worksCollection.Indexes().CreateMany(ctx, workIndexes)
	if err != nil {
		return err
	}

	// Categories: the admin list orders by display_order alone; the
	// public list filters active and orders, so it needs the compound.
	categoriesCollection := db.Collection("categories")
	categoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "display_order", Value: 1}},
		},
	}
	_, err = categoriesCollection.Indexes().CreateMany(ctx, categoryIndexes)
	if err != nil {
		return err
	}

	// Chat messages: per-session reads in timestamp order, plus a plain
	// timestamp index for the retention sweep.
	chatMessagesCollection := db.Collection("chat_messages")
	chatIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: 1}},
		},
	}
	_, err = chatMessagesCollection.Indexes().CreateMany(ctx, chatIndexes)
	if err != nil {
		return err
	}

	// Settings: single row per key.
	settingsCollection := db.Collection("settings")
	settingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err = settingsCollection.Indexes().CreateMany(ctx, settingIndexes)
	if err != nil {
		return err
	}

	return nil
}
