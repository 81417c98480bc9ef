package controllers

import (
	"net/http"
	"strconv"

	"course-hub/config"
	"course-hub/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func AddCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	newCourse, err := models.AddCourse(course)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newCourse)
}

func GetAllCourses(c *gin.Context) {
	courses, err := models.GetAllCourses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func GetFeaturedCourses(c *gin.Context) {
	count := parseCount(c.DefaultQuery("count", "4"))
	courses, err := models.GetFeaturedCourses(count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func GetLatestCourses(c *gin.Context) {
	count := parseCount(c.DefaultQuery("count", "4"))
	courses, err := models.GetLatestCourses(count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, courses)
}

func GetCourseByID(c *gin.Context) {
	id := c.Param("id")
	course, err := models.GetCourseByID(id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}

func UpdateCourse(c *gin.Context) {
	id := c.Param("id")
	var updated models.Course
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	course, err := models.UpdateCourse(id, updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}

func DeleteCourse(c *gin.Context) {
	id := c.Param("id")
	err := models.DeleteCourse(id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// EnrollInCourse records a checkout: the enrollment counter is bumped
// and the client is handed the WhatsApp number to finish the purchase.
func EnrollInCourse(c *gin.Context) {
	id := c.Param("id")
	err := models.IncrementEnrollment(id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enrollment count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Enrollment recorded",
		"whatsappNumber": config.AppConfig.WhatsAppNumber,
	})
}

func parseCount(raw string) int {
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return 4
	}
	return count
}
