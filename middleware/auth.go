package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/auth"
)

// ValidateToken guards protected routes. It expects an
// "Authorization: Bearer <token>" header (a bare token is tolerated) and puts
// the verified identity into the gin context as "user_id" and "email".
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		api.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := auth.VerifyToken(tokenString)
	if err != nil {
		api.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)

	c.Next()
}
