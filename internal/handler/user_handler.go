package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/database/service"
)

// UserHandler handles user profile and listing endpoints
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// UpdateProfileRequest holds optional profile mutations
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// GetProfile handles GET /profile for the authenticated user
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile handles PUT /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.UpdateProfile(userID, service.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// DeleteProfile handles DELETE /profile, soft-deleting the account
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.service.GetUser(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListUsersByRole handles GET /users/role/:role
func (h *UserHandler) ListUsersByRole(c *gin.Context) {
	users, err := h.service.ListUsersByRole(c.Param("role"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
