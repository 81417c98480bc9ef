package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"course-hub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginRouter(t *testing.T) (*gin.Engine, *middlewares.AdminGate) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gate := middlewares.NewAdminGate("admin", "admin123", "test-secret")
	InitAdminGate(gate)

	r := gin.New()
	r.POST("/admin/login", AdminLogin)
	r.GET("/admin/reviews", gate.Required(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r, gate
}

func TestAdminLoginSuccessSetsCookie(t *testing.T) {
	r, _ := newLoginRouter(t)

	w := httptest.NewRecorder()
	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var adminCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == middlewares.AdminCookieName {
			adminCookie = c
		}
	}
	require.NotNil(t, adminCookie, "login must set the admin cookie")
	assert.NotEmpty(t, adminCookie.Value)

	// the persisted cookie opens the gate on a fresh request
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/admin/reviews", nil)
	req2.AddCookie(adminCookie)
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	r, _ := newLoginRouter(t)

	w := httptest.NewRecorder()
	body := `{"username":"admin","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies(), "failed login must not set a cookie")
	assert.Contains(t, w.Body.String(), "Incorrect username or password")
}

func TestAdminLoginMissingFields(t *testing.T) {
	r, _ := newLoginRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteReviewIsStubbed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/admin/reviews/:id", DeleteReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/reviews/abc123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "backend support")
}
