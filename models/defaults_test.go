package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseApplyDefaults(t *testing.T) {
	tests := []struct {
		name   string
		course Course
		check  func(t *testing.T, c Course)
	}{
		{
			"missing aggregates stay zero",
			Course{Title: "New Course"},
			func(t *testing.T, c Course) {
				assert.Zero(t, c.Rating)
				assert.Zero(t, c.ReviewsCount)
			},
		},
		{
			"negative counts clamp to zero",
			Course{Rating: -1, ReviewsCount: -3, StudentsEnrolled: -2},
			func(t *testing.T, c Course) {
				assert.Zero(t, c.Rating)
				assert.Zero(t, c.ReviewsCount)
				assert.Zero(t, c.StudentsEnrolled)
			},
		},
		{
			"rating without reviews collapses",
			Course{Rating: 4.2, ReviewsCount: 0},
			func(t *testing.T, c Course) {
				assert.Zero(t, c.Rating)
			},
		},
		{
			"skill level defaults",
			Course{},
			func(t *testing.T, c Course) {
				assert.Equal(t, "All Levels", c.SkillLevel)
			},
		},
		{
			"valid aggregate untouched",
			Course{Rating: 4.1, ReviewsCount: 11, SkillLevel: "Beginner"},
			func(t *testing.T, c Course) {
				assert.InDelta(t, 4.1, c.Rating, 1e-9)
				assert.Equal(t, 11, c.ReviewsCount)
				assert.Equal(t, "Beginner", c.SkillLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.course.ApplyDefaults()
			tt.check(t, tt.course)
		})
	}
}

func TestBlogPostApplyDefaults(t *testing.T) {
	post := BlogPost{Title: "Untitled"}
	post.ApplyDefaults()
	assert.Equal(t, "Unknown Author", post.Author.Name)

	named := BlogPost{Author: BlogAuthor{Name: "Priya"}}
	named.ApplyDefaults()
	assert.Equal(t, "Priya", named.Author.Name)
}

func TestSlideApplyDefaults(t *testing.T) {
	slide := Slide{Title: "Sale"}
	slide.ApplyDefaults()
	if assert.NotNil(t, slide.IsActive) {
		assert.True(t, *slide.IsActive)
	}

	inactive := false
	hidden := Slide{IsActive: &inactive}
	hidden.ApplyDefaults()
	if assert.NotNil(t, hidden.IsActive) {
		assert.False(t, *hidden.IsActive)
	}
}
