package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// Init establishes the MongoDB connection and bootstraps indexes.
func Init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB: ", err)
	}

	Client = client
	ensureIndexes(ctx)
	log.Println("✅ Connected to MongoDB")
}

// Database returns the application database.
func Database() *mongo.Database {
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "docspot"
	}
	return Client.Database(name)
}

func Users() *mongo.Collection          { return Database().Collection("users") }
func DoctorProfiles() *mongo.Collection { return Database().Collection("doctorprofiles") }
func Appointments() *mongo.Collection   { return Database().Collection("appointments") }
func Payments() *mongo.Collection       { return Database().Collection("payments") }

// Ctx returns the per-operation context used for store calls.
func Ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// Unique indexes on username and email back the duplicate-registration check.
func ensureIndexes(ctx context.Context) {
	unique := options.Index().SetUnique(true)
	_, err := Users().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		log.Printf("Failed to create user indexes: %v", err)
	}
}
