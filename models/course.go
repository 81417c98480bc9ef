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

type Course struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	InstructorName   string             `json:"instructorName" bson:"instructorName"`
	Price            float64            `json:"price" bson:"price"`
	OriginalPrice    float64            `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Description      string             `json:"description" bson:"description"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription"`
	ImageURL         string             `json:"imageUrl" bson:"imageUrl"`
	Category         string             `json:"category" bson:"category"`
	SkillLevel       string             `json:"skillLevel" bson:"skillLevel"`
	Rating           float64            `json:"rating" bson:"rating"`
	ReviewsCount     int                `json:"reviewsCount" bson:"reviewsCount"`
	Duration         string             `json:"duration,omitempty" bson:"duration,omitempty"`
	LessonsCount     int                `json:"lessonsCount" bson:"lessonsCount"`
	Tags             []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	WhatYoullLearn   []string           `json:"whatYoullLearn,omitempty" bson:"whatYoullLearn,omitempty"`
	Requirements     []string           `json:"requirements,omitempty" bson:"requirements,omitempty"`
	IsFeatured       bool               `json:"isFeatured" bson:"isFeatured"`
	StudentsEnrolled int                `json:"studentsEnrolled" bson:"studentsEnrolled"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

// ApplyDefaults normalizes a course decoded from a raw document. Older
// documents were written without aggregate fields, so missing or broken
// values collapse to the schema defaults here, at the adapter boundary.
func (c *Course) ApplyDefaults() {
	if c.Rating < 0 {
		c.Rating = 0
	}
	if c.ReviewsCount < 0 {
		c.ReviewsCount = 0
	}
	if c.ReviewsCount == 0 {
		c.Rating = 0
	}
	if c.StudentsEnrolled < 0 {
		c.StudentsEnrolled = 0
	}
	if c.SkillLevel == "" {
		c.SkillLevel = "All Levels"
	}
}

// AddCourse inserts a course with zeroed aggregates and a server timestamp
func AddCourse(course Course) (Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	course.ID = primitive.NewObjectID()
	course.Rating = 0
	course.ReviewsCount = 0
	course.StudentsEnrolled = 0
	course.CreatedAt = time.Now().UTC()
	course.ApplyDefaults()

	_, err := db.CourseCollection.InsertOne(ctx, course)
	if err != nil {
		return Course{}, err
	}
	return course, nil
}

func GetAllCourses() ([]Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.CourseCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].ApplyDefaults()
	}
	return courses, nil
}

func GetFeaturedCourses(count int) ([]Course, error) {
	return findCourses(bson.M{"isFeatured": true}, count)
}

func GetLatestCourses(count int) ([]Course, error) {
	return findCourses(bson.M{}, count)
}

func findCourses(filter bson.M, count int) ([]Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(count))
	cursor, err := db.CourseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].ApplyDefaults()
	}
	return courses, nil
}

func GetCourseByID(id string) (Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Course{}, mongo.ErrNoDocuments
	}

	var course Course
	err = db.CourseCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&course)
	if err != nil {
		return Course{}, err
	}
	course.ApplyDefaults()
	return course, nil
}

// UpdateCourse writes display fields only. The aggregate pair
// (rating, reviewsCount) and studentsEnrolled are owned by their
// transactional paths and never pass through here.
func UpdateCourse(id string, updated Course) (Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Course{}, mongo.ErrNoDocuments
	}

	update := bson.M{
		"$set": bson.M{
			"title":            updated.Title,
			"instructorName":   updated.InstructorName,
			"price":            updated.Price,
			"originalPrice":    updated.OriginalPrice,
			"description":      updated.Description,
			"shortDescription": updated.ShortDescription,
			"imageUrl":         updated.ImageURL,
			"category":         updated.Category,
			"skillLevel":       updated.SkillLevel,
			"duration":         updated.Duration,
			"lessonsCount":     updated.LessonsCount,
			"tags":             updated.Tags,
			"whatYoullLearn":   updated.WhatYoullLearn,
			"requirements":     updated.Requirements,
			"isFeatured":       updated.IsFeatured,
		},
	}

	result, err := db.CourseCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return Course{}, err
	}
	if result.MatchedCount == 0 {
		return Course{}, mongo.ErrNoDocuments
	}
	return GetCourseByID(id)
}

// DeleteCourse removes the course and every review referencing it
func DeleteCourse(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := db.CourseCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	_, err = db.ReviewCollection.DeleteMany(ctx, bson.M{"courseId": objID})
	return err
}

// IncrementEnrollment bumps studentsEnrolled by one
func IncrementEnrollment(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := db.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"studentsEnrolled": 1}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
