package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-lab/auth"
)

const actorKey = "actor"

// RequestLogging tags each request with a generated id and logs method,
// path, status and latency once the handler chain returns.
func RequestLogging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// RequireAuth validates the bearer token and stores the authenticated
// username in the context as the acting user.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Error: "missing bearer token"})
			return
		}

		claims, err := auth.ValidateToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Success: false, Error: "invalid token"})
			return
		}

		c.Set(actorKey, claims.Username)
		c.Next()
	}
}

// Actor returns the authenticated username set by RequireAuth.
func Actor(c *gin.Context) string {
	return c.GetString(actorKey)
}
