package services_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"course-hub/database/inmem"
	"course-hub/models"
	"course-hub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(rating int) services.ReviewInput {
	return services.ReviewInput{
		Rating:   rating,
		Comment:  "This course was really worth the money.",
		UserName: "Asha",
	}
}

func TestNextAverage(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		count     int
		submitted int
		want      float64
	}{
		{"first review", 0, 0, 4, 4.0},
		{"second review", 4.0, 1, 2, 3.0},
		{"rounds down", 4.0, 10, 5, 4.1},
		{"rounds half up", 4.0, 1, 5, 4.5},
		{"all fives stay five", 5.0, 99, 5, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, services.NextAverage(tt.current, tt.count, tt.submitted), 1e-9)
		})
	}
}

func TestSubmitUpdatesAggregate(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)

	// rating 4.0 over 10 reviews implies a prior sum of 40
	courseID := store.AddCourse(models.Course{Title: "Go from Scratch", Rating: 4.0, ReviewsCount: 10})

	reviewID, err := svc.Submit(context.Background(), courseID, validInput(5))
	require.NoError(t, err)
	assert.NotEmpty(t, reviewID)

	course, err := store.Course(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, 11, course.ReviewsCount)
	assert.InDelta(t, 4.1, course.Rating, 1e-9)
	assert.Equal(t, 1, store.ReviewCount(courseID))
}

func TestSubmitSequenceMatchesMean(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"two reviews", []int{5, 3}, 4.0},
		{"three reviews", []int{5, 4, 3}, 4.0},
		{"mixed order", []int{3, 5, 4}, 4.0},
		{"single one-star", []int{1}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := inmem.NewStore()
			svc := services.NewReviewService(store)
			courseID := store.AddCourse(models.Course{Title: "Python Bootcamp"})

			for _, r := range tt.ratings {
				_, err := svc.Submit(context.Background(), courseID, validInput(r))
				require.NoError(t, err)
			}

			course, err := store.Course(context.Background(), courseID)
			require.NoError(t, err)
			assert.Equal(t, len(tt.ratings), course.ReviewsCount)
			assert.InDelta(t, tt.want, course.Rating, 1e-9)
		})
	}
}

func TestSubmitLongUniformSequence(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)
	courseID := store.AddCourse(models.Course{Title: "Cybersecurity Basics"})

	for i := 0; i < 1000; i++ {
		_, err := svc.Submit(context.Background(), courseID, validInput(4))
		require.NoError(t, err)
	}

	course, err := store.Course(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, 1000, course.ReviewsCount)
	assert.InDelta(t, 4.0, course.Rating, 1e-9)
	assert.Equal(t, 1000, store.ReviewCount(courseID))
}

// The running average rounds after every step, so over a mixed
// sequence the stored value tracks the incremental fold, not
// necessarily the exact mean. Assert the fold.
func TestSubmitLongMixedSequence(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)
	courseID := store.AddCourse(models.Course{Title: "Graphic Design Pro"})

	rng := rand.New(rand.NewSource(7))
	want := 0.0
	for i := 0; i < 1000; i++ {
		rating := rng.Intn(5) + 1
		want = services.NextAverage(want, i, rating)
		_, err := svc.Submit(context.Background(), courseID, validInput(rating))
		require.NoError(t, err)
	}

	course, err := store.Course(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, 1000, course.ReviewsCount)
	assert.InDelta(t, want, course.Rating, 1e-9)
	// drift from per-step rounding stays within a decimal
	assert.LessOrEqual(t, math.Abs(course.Rating-3.0), 0.5)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		input services.ReviewInput
	}{
		{"rating too low", services.ReviewInput{Rating: 0, Comment: "Good value for the price.", UserName: "Asha"}},
		{"rating too high", services.ReviewInput{Rating: 6, Comment: "Good value for the price.", UserName: "Asha"}},
		{"comment nine chars", services.ReviewInput{Rating: 4, Comment: "Too short", UserName: "Asha"}},
		{"blank user name", services.ReviewInput{Rating: 4, Comment: "Good value for the price.", UserName: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := inmem.NewStore()
			svc := services.NewReviewService(store)
			courseID := store.AddCourse(models.Course{Title: "AI for Everyone", Rating: 4.5, ReviewsCount: 2})

			_, err := svc.Submit(context.Background(), courseID, tt.input)

			var vErr *services.ValidationError
			require.ErrorAs(t, err, &vErr)

			// rejected before any store mutation
			course, getErr := store.Course(context.Background(), courseID)
			require.NoError(t, getErr)
			assert.Equal(t, 2, course.ReviewsCount)
			assert.InDelta(t, 4.5, course.Rating, 1e-9)
			assert.Zero(t, store.ReviewCount(courseID))
		})
	}
}

func TestSubmitCourseNotFound(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)

	missingID := "64a000000000000000000000"
	_, err := svc.Submit(context.Background(), missingID, validInput(5))
	require.ErrorIs(t, err, services.ErrCourseNotFound)

	// the review and the aggregate update commit together, so a
	// missing course leaves no orphaned review behind
	assert.Zero(t, store.ReviewCount(missingID))
}

func TestSubmitStoreUnavailable(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)
	courseID := store.AddCourse(models.Course{Title: "Web Scraping 101"})

	store.FailWith(fmt.Errorf("%w: connection reset", services.ErrStoreUnavailable))

	_, err := svc.Submit(context.Background(), courseID, validInput(3))
	require.ErrorIs(t, err, services.ErrStoreUnavailable)
}

func TestConcurrentSubmissionsNoLostUpdate(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)
	courseID := store.AddCourse(models.Course{Title: "Photoshop Mastery"})

	var wg sync.WaitGroup
	for _, rating := range []int{2, 4} {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), courseID, validInput(r))
			assert.NoError(t, err)
		}(rating)
	}
	wg.Wait()

	course, err := store.Course(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, 2, course.ReviewsCount)
	assert.InDelta(t, 3.0, course.Rating, 1e-9)
	assert.Equal(t, 2, store.ReviewCount(courseID))
}

func TestReconcileAggregates(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)
	courseID := store.AddCourse(models.Course{Title: "Excel for Analysts"})

	for _, r := range []int{4, 2} {
		_, err := svc.Submit(context.Background(), courseID, validInput(r))
		require.NoError(t, err)
	}

	// corrupt the aggregate, as accumulated rounding drift would
	require.NoError(t, store.SetAggregate(context.Background(), courseID, 4.8, 7))

	require.NoError(t, svc.ReconcileAggregates(context.Background()))

	course, err := store.Course(context.Background(), courseID)
	require.NoError(t, err)
	assert.Equal(t, 2, course.ReviewsCount)
	assert.InDelta(t, 3.0, course.Rating, 1e-9)
}

func TestReconcileZeroesCourseWithoutReviews(t *testing.T) {
	store := inmem.NewStore()
	svc := services.NewReviewService(store)
	courseID := store.AddCourse(models.Course{Title: "Empty Course", Rating: 3.7, ReviewsCount: 4})

	require.NoError(t, svc.ReconcileAggregates(context.Background()))

	course, err := store.Course(context.Background(), courseID)
	require.NoError(t, err)
	assert.Zero(t, course.ReviewsCount)
	assert.Zero(t, course.Rating)
}
