package models

import (
	"context"
	"time"

	"course-hub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseID  primitive.ObjectID `json:"courseId" bson:"courseId"`
	UserName  string             `json:"userName" bson:"userName"`
	AvatarURL string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// GetReviewsByCourseID returns a course's reviews, newest first
func GetReviewsByCourseID(courseID string) ([]Review, error) {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return findReviews(bson.M{"courseId": objID})
}

// GetAllReviews returns every review in the system, newest first
func GetAllReviews() ([]Review, error) {
	return findReviews(bson.M{})
}

func findReviews(filter bson.M) ([]Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.ReviewCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
