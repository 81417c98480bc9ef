package controllers

import (
	"log"
	"net/http"

	"course-hub/models"
	"course-hub/utils"

	"github.com/gin-gonic/gin"
)

// CreateCourseRequest records a visitor's wish for a missing course
// and notifies the site operator by email.
func CreateCourseRequest(c *gin.Context) {
	var input struct {
		CourseTitle string `json:"courseTitle" binding:"required"`
		Description string `json:"description"`
		Email       string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	request, err := models.AddCourseRequest(models.CourseRequest{
		CourseTitle: input.CourseTitle,
		Description: input.Description,
		Email:       input.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit course request"})
		return
	}

	// Notification failure should not fail the request itself
	if err := utils.SendCourseRequestEmail(request.CourseTitle, request.Description, request.Email); err != nil {
		log.Println("Failed to send course request notification:", err)
	}

	c.JSON(http.StatusCreated, request)
}

func GetCourseRequests(c *gin.Context) {
	requests, err := models.GetCourseRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
