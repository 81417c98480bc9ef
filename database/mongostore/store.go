// Package mongostore implements the review store on MongoDB. The
// review insert and the course aggregate update run inside one
// session transaction, so a failed course update never leaves an
// orphaned review behind.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"course-hub/database"
	"course-hub/models"
	"course-hub/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct{}

func New() *Store {
	return &Store{}
}

var _ services.ReviewStore = (*Store)(nil)

func (s *Store) Course(ctx context.Context, courseID string) (models.Course, error) {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return models.Course{}, services.ErrCourseNotFound
	}

	var course models.Course
	err = db.CourseCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, services.ErrCourseNotFound
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	course.ApplyDefaults()
	return course, nil
}

func (s *Store) SubmitReview(ctx context.Context, courseID string, review models.Review, apply func(models.Course) models.Course) (string, error) {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return "", services.ErrCourseNotFound
	}

	session, err := db.Client.StartSession()
	if err != nil {
		return "", fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var course models.Course
		err := db.CourseCollection.FindOne(sc, bson.M{"_id": objID}).Decode(&course)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, services.ErrCourseNotFound
		}
		if err != nil {
			return nil, err
		}
		course.ApplyDefaults()

		updated := apply(course)
		_, err = db.CourseCollection.UpdateOne(sc,
			bson.M{"_id": objID},
			bson.M{"$set": bson.M{
				"rating":       updated.Rating,
				"reviewsCount": updated.ReviewsCount,
			}},
		)
		if err != nil {
			return nil, err
		}

		review.ID = primitive.NewObjectID()
		review.CourseID = objID
		if _, err = db.ReviewCollection.InsertOne(sc, review); err != nil {
			return nil, err
		}
		return review.ID.Hex(), nil
	})
	if errors.Is(err, services.ErrCourseNotFound) {
		return "", services.ErrCourseNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	return result.(string), nil
}

func (s *Store) ReviewsByCourse(ctx context.Context, courseID string) ([]models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, services.ErrCourseNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.ReviewCollection.Find(ctx, bson.M{"courseId": objID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	return reviews, nil
}

func (s *Store) Courses(ctx context.Context) ([]models.Course, error) {
	cursor, err := db.CourseCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	for i := range courses {
		courses[i].ApplyDefaults()
	}
	return courses, nil
}

func (s *Store) SetAggregate(ctx context.Context, courseID string, rating float64, reviewsCount int) error {
	objID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return services.ErrCourseNotFound
	}

	result, err := db.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"rating": rating, "reviewsCount": reviewsCount}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrStoreUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return services.ErrCourseNotFound
	}
	return nil
}
