package services

import (
	"context"
	"fmt"
	"log"
	"math"
)

// ReconcileAggregates recomputes every course's (rating, reviewsCount)
// pair from the reviews collection and corrects any drift. Incremental
// updates round after each step, so long review sequences can wander a
// decimal off the true mean.
func (s *ReviewService) ReconcileAggregates(ctx context.Context) error {
	courses, err := s.store.Courses(ctx)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}

	var corrected int
	for _, course := range courses {
		reviews, err := s.store.ReviewsByCourse(ctx, course.ID.Hex())
		if err != nil {
			return fmt.Errorf("list reviews for %s: %w", course.ID.Hex(), err)
		}

		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}

		count := len(reviews)
		rating := 0.0
		if count > 0 {
			rating = math.Round(float64(sum)/float64(count)*10) / 10
		}

		if rating == course.Rating && count == course.ReviewsCount {
			continue
		}

		if err := s.store.SetAggregate(ctx, course.ID.Hex(), rating, count); err != nil {
			return fmt.Errorf("set aggregate for %s: %w", course.ID.Hex(), err)
		}
		log.Printf("Reconciled course %s: rating %.1f -> %.1f, reviews %d -> %d",
			course.ID.Hex(), course.Rating, rating, course.ReviewsCount, count)
		corrected++
	}

	if corrected > 0 {
		log.Printf("Aggregate reconcile corrected %d course(s)", corrected)
	}
	return nil
}
