package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/habitflow-api/pkg/helpers"
	"github.com/habitflow/habitflow-api/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth validates the bearer token on the Authorization header and attaches
// the decoded identity claims to the Gin context. Missing, malformed,
// tampered, and expired credentials all short-circuit with 401 before any
// handler runs.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.Error(c, http.StatusUnauthorized, "missing or malformed authorization header", nil)
			return
		}
		claims, err := jwt.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Username)
		c.Next()
	}
}
