package controllers

import (
	"net/http"

	"course-hub/middleware"

	"github.com/gin-gonic/gin"
)

var adminGate *middlewares.AdminGate

// InitAdminGate hands the gate to the login handler
func InitAdminGate(gate *middlewares.AdminGate) {
	adminGate = gate
}

// AdminLogin checks the shared admin credentials and, on success,
// sets the long-lived admin cookie. On failure the client keeps the
// username it typed and clears only the password field.
func AdminLogin(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if !adminGate.Authenticate(input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := adminGate.IssueToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AdminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   3600 * 24 * 365 * 10, // effectively no expiry
		Secure:   true,
		HttpOnly: false,
		SameSite: http.SameSiteNoneMode,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}
