package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"course-hub/models"
	"course-hub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

var reviewService *services.ReviewService

// InitReviewService hands the rating aggregator to the handlers
func InitReviewService(svc *services.ReviewService) {
	reviewService = svc
}

// CreateReview submits a review for a course and updates the course's
// aggregate rating in the same store transaction.
func CreateReview(c *gin.Context) {
	courseID := c.Param("id")

	var input struct {
		Rating    int    `json:"rating" binding:"required,min=1,max=5"`
		Comment   string `json:"comment" binding:"required,min=10"`
		UserName  string `json:"userName" binding:"required"`
		AvatarURL string `json:"avatarUrl"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reviewID, err := reviewService.Submit(ctx, courseID, services.ReviewInput{
		Rating:    input.Rating,
		Comment:   input.Comment,
		UserName:  input.UserName,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.Is(err, services.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case errors.Is(err, services.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to save review, please try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": reviewID, "message": "Review submitted successfully"})
}

func GetReviewsByCourse(c *gin.Context) {
	courseID := c.Param("id")

	reviews, err := models.GetReviewsByCourseID(courseID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func GetAllReviews(c *gin.Context) {
	reviews, err := models.GetAllReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview is a documented stub. Removing a review means
// recalculating the course aggregate, which this deployment does not
// support yet.
func DeleteReview(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": services.ErrNotImplemented.Error()})
}
