package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const AdminCookieName = "admin_token"

// AdminGate guards the admin route subtree behind a single shared
// credential pair. The check is exact string equality against
// configured secrets; this is a placeholder gate, not a real security
// boundary.
type AdminGate struct {
	username string
	password string
	secret   []byte
}

func NewAdminGate(username, password, jwtSecret string) *AdminGate {
	return &AdminGate{
		username: username,
		password: password,
		secret:   []byte(jwtSecret),
	}
}

// Authenticate compares both fields in constant time
func (g *AdminGate) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	return userOK && passOK
}

// IssueToken mints the admin session token. There is no exp claim:
// the gate stays open until the client clears the cookie.
func (g *AdminGate) IssueToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
	})
	return token.SignedString(g.secret)
}

// Required rejects requests without a valid admin cookie
func (g *AdminGate) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AdminCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin authentication required"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return g.secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
