package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"ministry_backend/internals/configs"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// ConnectDB builds the single Mongo client for the process and verifies it
// with a ping. Handlers never touch these globals directly; the database
// handle is passed into route setup once at startup.
func ConnectDB() {
	log.Println("🔌 Connecting to MongoDB...")

	if configs.MongoURI == "" {
		log.Fatal("❌ MONGO_URI is empty, cannot connect")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(configs.MongoURI).
		SetMaxPoolSize(50).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	Client = client
	DB = client.Database(configs.DBName)
	log.Println("✅ Connected to MongoDB.")
}

// DisconnectDB closes the client during graceful shutdown.
func DisconnectDB(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("⚠️ Error closing MongoDB connection: %v", err)
	}
}
