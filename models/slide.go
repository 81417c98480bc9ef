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

type Slide struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	CtaText     string             `json:"ctaText,omitempty" bson:"ctaText,omitempty"`
	CtaLink     string             `json:"ctaLink,omitempty" bson:"ctaLink,omitempty"`
	IsActive    *bool              `json:"isActive" bson:"isActive"`
	Order       int                `json:"order" bson:"order"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ApplyDefaults treats a missing isActive as active, matching how
// slides created before the flag existed should behave.
func (s *Slide) ApplyDefaults() {
	if s.IsActive == nil {
		active := true
		s.IsActive = &active
	}
}

func AddSlide(slide Slide) (Slide, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slide.ID = primitive.NewObjectID()
	slide.CreatedAt = time.Now().UTC()
	slide.ApplyDefaults()

	_, err := db.SlideCollection.InsertOne(ctx, slide)
	if err != nil {
		return Slide{}, err
	}
	return slide, nil
}

// GetSlides lists slides in display order. Public callers pass
// activeOnly=true.
func GetSlides(activeOnly bool) ([]Slide, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = bson.M{"$ne": false}
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := db.SlideCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slides []Slide
	if err = cursor.All(ctx, &slides); err != nil {
		return nil, err
	}
	for i := range slides {
		slides[i].ApplyDefaults()
	}
	return slides, nil
}

func UpdateSlide(id string, updated Slide) (Slide, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Slide{}, mongo.ErrNoDocuments
	}

	updated.ApplyDefaults()
	update := bson.M{
		"$set": bson.M{
			"title":       updated.Title,
			"description": updated.Description,
			"imageUrl":    updated.ImageURL,
			"ctaText":     updated.CtaText,
			"ctaLink":     updated.CtaLink,
			"isActive":    updated.IsActive,
			"order":       updated.Order,
		},
	}

	result, err := db.SlideCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return Slide{}, err
	}
	if result.MatchedCount == 0 {
		return Slide{}, mongo.ErrNoDocuments
	}

	updated.ID = objID
	return updated, nil
}

func DeleteSlide(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := db.SlideCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
