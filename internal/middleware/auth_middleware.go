package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/database/service"
)

// AuthMiddleware handles JWT validation
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth validates the access token and sets userID in context.
// Missing, expired and invalid tokens get distinct responses.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.logger.Warn("⚠️ [Middleware] Missing Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authorization required",
				"message": "Token is missing",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Please provide a valid token",
			})
			c.Abort()
			return
		}

		userID, err := m.service.ValidateAccessToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				m.logger.Warn("⚠️ [Middleware] Expired token")
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "Token has expired",
					"message": "Please log in again",
				})
			} else {
				m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   "Invalid token",
					"message": "Please provide a valid token",
				})
			}
			c.Abort()
			return
		}

		c.Set("userID", userID)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", userID)

		c.Next()
	}
}

// BodyLimit caps the request body size; oversized uploads fail during read
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
