package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"placemark/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("scope", claims.Scope)
		c.Next()
	}
}

// AdminMiddleware gates admin routes on the scope set from the token.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, _ := c.Get("scope")
		scopes, ok := scope.([]string)
		if !ok || !utils.IsAdmin(scopes) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
