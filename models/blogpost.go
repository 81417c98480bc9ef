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

type BlogAuthor struct {
	Name      string `json:"name" bson:"name"`
	AvatarURL string `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
}

type BlogPost struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Slug        string             `json:"slug" bson:"slug"`
	Title       string             `json:"title" bson:"title"`
	Author      BlogAuthor         `json:"author" bson:"author"`
	Excerpt     string             `json:"excerpt" bson:"excerpt"`
	Content     string             `json:"content" bson:"content"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills fields that older documents may lack
func (p *BlogPost) ApplyDefaults() {
	if p.Author.Name == "" {
		p.Author.Name = "Unknown Author"
	}
}

func AddBlogPost(post BlogPost) (BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	post.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.ApplyDefaults()

	_, err := db.BlogPostCollection.InsertOne(ctx, post)
	if err != nil {
		return BlogPost{}, err
	}
	return post, nil
}

// GetBlogPosts lists posts, newest first. Public callers pass
// publishedOnly=true; the admin console sees drafts too.
func GetBlogPosts(publishedOnly bool) ([]BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["isPublished"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.BlogPostCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []BlogPost
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].ApplyDefaults()
	}
	return posts, nil
}

func GetBlogPostByID(id string) (BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return BlogPost{}, mongo.ErrNoDocuments
	}

	var post BlogPost
	err = db.BlogPostCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		return BlogPost{}, err
	}
	post.ApplyDefaults()
	return post, nil
}

func UpdateBlogPost(id string, updated BlogPost) (BlogPost, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return BlogPost{}, mongo.ErrNoDocuments
	}

	updated.ApplyDefaults()
	update := bson.M{
		"$set": bson.M{
			"slug":        updated.Slug,
			"title":       updated.Title,
			"author":      updated.Author,
			"excerpt":     updated.Excerpt,
			"content":     updated.Content,
			"imageUrl":    updated.ImageURL,
			"tags":        updated.Tags,
			"category":    updated.Category,
			"isPublished": updated.IsPublished,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := db.BlogPostCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return BlogPost{}, err
	}
	if result.MatchedCount == 0 {
		return BlogPost{}, mongo.ErrNoDocuments
	}
	return GetBlogPostByID(id)
}

func DeleteBlogPost(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	result, err := db.BlogPostCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
