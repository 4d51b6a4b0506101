package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/database/service"
	"github.com/mkulima/livestock-market/internal/storage"
)

// LivestockHandler handles livestock listing endpoints
type LivestockHandler struct {
	service    service.LivestockService
	imageStore *storage.ImageStore
	logger     *slog.Logger
}

// NewLivestockHandler creates a new livestock handler instance
func NewLivestockHandler(
	service service.LivestockService,
	imageStore *storage.ImageStore,
	logger *slog.Logger,
) *LivestockHandler {
	return &LivestockHandler{
		service:    service,
		imageStore: imageStore,
		logger:     logger,
	}
}

// ListLivestock handles GET /livestock
func (h *LivestockHandler) ListLivestock(c *gin.Context) {
	listings, err := h.service.ListLivestock()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"livestock": listings})
}

// GetLivestock handles GET /livestock/:id
func (h *LivestockHandler) GetLivestock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid livestock ID"})
		return
	}

	listing, err := h.service.GetLivestock(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"livestock": listing})
}

// livestockInputFromForm reads the multipart form fields, saving the
// optional image file first so the stored path goes on the row.
func (h *LivestockHandler) livestockInputFromForm(c *gin.Context) (service.LivestockInput, bool) {
	// Parse the body up front: this is where MaxBytesReader trips, and
	// letting PostForm swallow that error would misreport it as a 400
	if _, err := c.MultipartForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload too large"})
			return service.LivestockInput{}, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return service.LivestockInput{}, false
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a number"})
		return service.LivestockInput{}, false
	}

	input := service.LivestockInput{
		Breed:       c.PostForm("breed"),
		Age:         c.PostForm("age"),
		Weight:      c.PostForm("weight"),
		Price:       price,
		Location:    c.PostForm("location"),
		Description: c.PostForm("description"),
	}

	file, err := c.FormFile("image")
	if err == nil {
		filename, err := h.imageStore.Save(file)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedExtension) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
				return service.LivestockInput{}, false
			}
			h.logger.Error("❌ [LivestockHandler] Failed to save image", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return service.LivestockInput{}, false
		}
		input.Image = filename
	}

	return input, true
}

// CreateLivestock handles POST /livestock as multipart form data
func (h *LivestockHandler) CreateLivestock(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	input, ok := h.livestockInputFromForm(c)
	if !ok {
		return
	}

	listing, err := h.service.CreateLivestock(userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Livestock listed successfully",
		"livestock": listing,
	})
}

// UpdateLivestock handles PUT /livestock/:id, owner only
func (h *LivestockHandler) UpdateLivestock(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid livestock ID"})
		return
	}

	input, ok := h.livestockInputFromForm(c)
	if !ok {
		return
	}

	listing, err := h.service.UpdateLivestock(uint(id), userID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Livestock updated successfully",
		"livestock": listing,
	})
}

// DeleteLivestock handles DELETE /livestock/:id, owner only
func (h *LivestockHandler) DeleteLivestock(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid livestock ID"})
		return
	}

	if err := h.service.DeleteLivestock(uint(id), userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Livestock deleted successfully"})
}

// ListMyLivestock handles GET /my-livestock for the authenticated user
func (h *LivestockHandler) ListMyLivestock(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	listings, err := h.service.ListOwnedLivestock(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"livestock": listings})
}
