package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/felizhandmade/feliz-store/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id in token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("admin", claims.Admin)
		c.Next()
	}
}

// AdminOnly guards the admin panel API. Admin is a single boolean claim on
// the identity; there is no finer role model.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, exists := c.Get("admin")
		if !exists || admin != true {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// WebSocketAuthMiddleware accepts the token from the query string, since
// browsers cannot set headers on websocket upgrades.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token missing"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}
		if !claims.Admin {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("admin", claims.Admin)
		c.Next()
	}
}
