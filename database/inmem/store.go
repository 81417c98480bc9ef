// Package inmem holds an in-memory review store used by tests and
// local development. A single mutex stands in for the document
// store's transaction: submissions for the same course serialize, so
// no update is lost.
package inmem

import (
	"context"
	"sort"
	"sync"

	"course-hub/models"
	"course-hub/services"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu      sync.Mutex
	courses map[string]models.Course
	reviews map[string][]models.Review
	fail    error
}

func NewStore() *Store {
	return &Store{
		courses: make(map[string]models.Course),
		reviews: make(map[string][]models.Review),
	}
}

var _ services.ReviewStore = (*Store)(nil)

// AddCourse seeds a course and returns its id
func (s *Store) AddCourse(course models.Course) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	s.courses[course.ID.Hex()] = course
	return course.ID.Hex()
}

// RemoveCourse drops a course, leaving its reviews behind
func (s *Store) RemoveCourse(courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courses, courseID)
}

// FailWith makes every subsequent store call return err
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *Store) Course(ctx context.Context, courseID string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return models.Course{}, s.fail
	}
	course, ok := s.courses[courseID]
	if !ok {
		return models.Course{}, services.ErrCourseNotFound
	}
	return course, nil
}

func (s *Store) SubmitReview(ctx context.Context, courseID string, review models.Review, apply func(models.Course) models.Course) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return "", s.fail
	}
	course, ok := s.courses[courseID]
	if !ok {
		return "", services.ErrCourseNotFound
	}

	s.courses[courseID] = apply(course)

	review.ID = primitive.NewObjectID()
	review.CourseID = course.ID
	s.reviews[courseID] = append(s.reviews[courseID], review)
	return review.ID.Hex(), nil
}

func (s *Store) ReviewsByCourse(ctx context.Context, courseID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return nil, s.fail
	}
	reviews := append([]models.Review(nil), s.reviews[courseID]...)
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (s *Store) Courses(ctx context.Context) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return nil, s.fail
	}
	courses := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, c)
	}
	return courses, nil
}

func (s *Store) SetAggregate(ctx context.Context, courseID string, rating float64, reviewsCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return s.fail
	}
	course, ok := s.courses[courseID]
	if !ok {
		return services.ErrCourseNotFound
	}
	course.Rating = rating
	course.ReviewsCount = reviewsCount
	s.courses[courseID] = course
	return nil
}

// ReviewCount reports how many reviews a course has accumulated
func (s *Store) ReviewCount(courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews[courseID])
}
