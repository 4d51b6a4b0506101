package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/database/repository"
	"github.com/mkulima/livestock-market/internal/database/service"
)

// handleServiceError maps service and repository errors to HTTP responses.
// Validation messages pass through verbatim; unknown errors become a 500
// without leaking internals.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, service.ErrProfileExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists for this user"})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
	case errors.Is(err, service.ErrAccountDeactivated):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this listing"})
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, repository.ErrFarmerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
	case errors.Is(err, repository.ErrBrokerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Broker not found"})
	case errors.Is(err, repository.ErrLivestockNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Livestock not found"})
	case errors.Is(err, repository.ErrTokenNotFound), errors.Is(err, repository.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// userIDFromContext reads the user id set by the auth middleware
func userIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, false
	}
	return userID, true
}
