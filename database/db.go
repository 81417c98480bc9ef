package db

import (
	"context"
	"log"
	"time"

	"course-hub/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is the shared MongoDB connection
var Client *mongo.Client

var CourseCollection *mongo.Collection
var ReviewCollection *mongo.Collection
var BlogPostCollection *mongo.Collection
var SlideCollection *mongo.Collection
var SocialLinkCollection *mongo.Collection
var CourseRequestCollection *mongo.Collection

var dbName string

// InitDB establishes the MongoDB connection and binds collection handles
func InitDB() {
	mongoURI := config.AppConfig.MongoURI
	dbName = config.AppConfig.DBName

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	Client = client
	CourseCollection = client.Database(dbName).Collection("courses")
	ReviewCollection = client.Database(dbName).Collection("reviews")
	BlogPostCollection = client.Database(dbName).Collection("blogPosts")
	SlideCollection = client.Database(dbName).Collection("slides")
	SocialLinkCollection = client.Database(dbName).Collection("socialLinks")
	CourseRequestCollection = client.Database(dbName).Collection("courseRequests")

	log.Println("Connected to MongoDB")
}

// DisconnectDB closes the MongoDB connection
func DisconnectDB() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Client.Disconnect(ctx)
	if err != nil {
		log.Println("Failed to disconnect MongoDB:", err)
		return
	}
	log.Println("Disconnected from MongoDB")
}

// OpenCollection returns a collection handle by name
func OpenCollection(collectionName string) *mongo.Collection {
	return Client.Database(dbName).Collection(collectionName)
}
