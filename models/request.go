package models

import (
	"context"
	"time"

	"course-hub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRequest is a visitor asking for a course the catalog lacks
type CourseRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseTitle string             `json:"courseTitle" bson:"courseTitle"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Email       string             `json:"email" bson:"email"`
	RequestedAt time.Time          `json:"requestedAt" bson:"requestedAt"`
}

func AddCourseRequest(request CourseRequest) (CourseRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	request.ID = primitive.NewObjectID()
	request.RequestedAt = time.Now().UTC()

	_, err := db.CourseRequestCollection.InsertOne(ctx, request)
	if err != nil {
		return CourseRequest{}, err
	}
	return request, nil
}

func GetCourseRequests() ([]CourseRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}})
	cursor, err := db.CourseRequestCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []CourseRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
