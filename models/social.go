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

type SocialLink struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Platform  string             `json:"platform" bson:"platform"`
	URL       string             `json:"url" bson:"url"`
	IconName  string             `json:"iconName,omitempty" bson:"iconName,omitempty"`
	Order     int                `json:"order" bson:"order"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

func AddSocialLink(link SocialLink) (SocialLink, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	link.ID = primitive.NewObjectID()
	link.CreatedAt = time.Now().UTC()

	_, err := db.SocialLinkCollection.InsertOne(ctx, link)
	if err != nil {
		return SocialLink{}, err
	}
	return link, nil
}

func GetSocialLinks() ([]SocialLink, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := db.SocialLinkCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []SocialLink
	if err = cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func UpdateSocialLink(id string, updated SocialLink) (SocialLink, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return SocialLink{}, mongo.ErrNoDocuments
	}

	update := bson.M{
		"$set": bson.M{
			"platform": updated.Platform,
			"url":      updated.URL,
			"iconName": updated.IconName,
			"order":    updated.Order,
		},
	}

	result, err := db.SocialLinkCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return SocialLink{}, err
	}
	if result.MatchedCount == 0 {
		return SocialLink{}, mongo.ErrNoDocuments
	}

	updated.ID = objID
	return updated, nil
}

func DeleteSocialLink(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := db.SocialLinkCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
