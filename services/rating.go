package services

import (
	"context"
	"math"
	"strings"
	"time"

	"course-hub/models"
)

// ReviewStore is the slice of the document store the rating protocol
// needs: a course read, a transactional review submission, and the
// queries the reconcile job scans with.
type ReviewStore interface {
	// Course returns the course or ErrCourseNotFound.
	Course(ctx context.Context, courseID string) (models.Course, error)

	// SubmitReview atomically inserts the review and applies the
	// aggregate update produced by apply to the course record. Both
	// writes commit together or not at all; concurrent submissions
	// for the same course serialize. Returns the new review's id.
	SubmitReview(ctx context.Context, courseID string, review models.Review, apply func(models.Course) models.Course) (string, error)

	// ReviewsByCourse returns the course's reviews, newest first.
	ReviewsByCourse(ctx context.Context, courseID string) ([]models.Review, error)

	// Courses lists every course.
	Courses(ctx context.Context) ([]models.Course, error)

	// SetAggregate overwrites the (rating, reviewsCount) pair.
	SetAggregate(ctx context.Context, courseID string, rating float64, reviewsCount int) error
}

// ReviewInput carries a review submission before it has an id or timestamp
type ReviewInput struct {
	Rating    int
	Comment   string
	UserName  string
	AvatarURL string
}

// ReviewService maintains the running (rating, reviewsCount) pair on a
// course whenever a review is submitted.
type ReviewService struct {
	store ReviewStore
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

// Submit validates the input, then persists the review and the updated
// course aggregates in a single store transaction.
func (s *ReviewService) Submit(ctx context.Context, courseID string, in ReviewInput) (string, error) {
	if err := validateReview(in); err != nil {
		return "", err
	}

	review := models.Review{
		UserName:  strings.TrimSpace(in.UserName),
		AvatarURL: in.AvatarURL,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}

	return s.store.SubmitReview(ctx, courseID, review, func(course models.Course) models.Course {
		course.Rating = NextAverage(course.Rating, course.ReviewsCount, in.Rating)
		course.ReviewsCount++
		return course
	})
}

// NextAverage folds one more rating into a running average, rounded to
// one decimal place. The per-step rounding is lossy over long
// sequences; the reconcile job recomputes from the full review set.
func NextAverage(currentRating float64, currentCount, submitted int) float64 {
	next := (currentRating*float64(currentCount) + float64(submitted)) / float64(currentCount+1)
	return math.Round(next*10) / 10
}

// The form enforces these constraints too; they are re-checked here
// because the aggregate arithmetic depends on the rating range.
func validateReview(in ReviewInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if len(strings.TrimSpace(in.Comment)) < 10 {
		return &ValidationError{Field: "comment", Reason: "must be at least 10 characters"}
	}
	if strings.TrimSpace(in.UserName) == "" {
		return &ValidationError{Field: "userName", Reason: "must not be empty"}
	}
	return nil
}
