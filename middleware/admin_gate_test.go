package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(gate *AdminGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", gate.Required(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	gate := NewAdminGate("admin", "admin123", "test-secret")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "admin", "admin123", true},
		{"wrong password", "admin", "admin124", false},
		{"wrong username", "root", "admin123", false},
		{"both empty", "", "", false},
		{"case sensitive", "Admin", "admin123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Authenticate(tt.username, tt.password))
		})
	}
}

func TestRequiredAllowsValidToken(t *testing.T) {
	gate := NewAdminGate("admin", "admin123", "test-secret")
	r := newTestRouter(gate)

	token, err := gate.IssueToken()
	require.NoError(t, err)

	// a persisted token keeps working on every later request
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequiredRejectsMissingCookie(t *testing.T) {
	gate := NewAdminGate("admin", "admin123", "test-secret")
	r := newTestRouter(gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequiredRejectsForgedToken(t *testing.T) {
	gate := NewAdminGate("admin", "admin123", "test-secret")
	other := NewAdminGate("admin", "admin123", "different-secret")
	r := newTestRouter(gate)

	forged, err := other.IssueToken()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: forged})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequiredRejectsGarbageToken(t *testing.T) {
	gate := NewAdminGate("admin", "admin123", "test-secret")
	r := newTestRouter(gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "not-a-jwt"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
