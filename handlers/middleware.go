package handlers

import (
	"net/http"
	"strings"

	"filebox-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by AuthRequired for downstream handlers
const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// AuthRequired verifies the bearer token and stashes the caller identity in
// the gin context. Missing, malformed and expired tokens all end the request
// with 401.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

// currentUserID returns the authenticated user id set by AuthRequired
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ctxUserID).(uuid.UUID)
}
