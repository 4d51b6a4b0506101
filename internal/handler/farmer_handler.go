package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/database/service"
)

// FarmerHandler handles farmer profile endpoints
type FarmerHandler struct {
	service service.FarmerService
	logger  *slog.Logger
}

// NewFarmerHandler creates a new farmer handler instance
func NewFarmerHandler(service service.FarmerService, logger *slog.Logger) *FarmerHandler {
	return &FarmerHandler{
		service: service,
		logger:  logger,
	}
}

// CreateFarmerRequest represents the farmer profile payload
type CreateFarmerRequest struct {
	FarmName     string `json:"farm_name" binding:"required"`
	FarmLocation string `json:"farm_location"`
}

// ListFarmers handles GET /farmers
func (h *FarmerHandler) ListFarmers(c *gin.Context) {
	farmers, err := h.service.ListFarmers()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": farmers})
}

// GetFarmer handles GET /farmers/:id
func (h *FarmerHandler) GetFarmer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid farmer ID"})
		return
	}

	farmer, err := h.service.GetFarmer(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmer": farmer})
}

// CreateFarmer handles POST /farmers for the authenticated user
func (h *FarmerHandler) CreateFarmer(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Farm name is required"})
		return
	}

	farmer, err := h.service.CreateFarmer(userID, req.FarmName, req.FarmLocation)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Farmer profile created successfully",
		"farmer":  farmer,
	})
}

// ListFarmersByLocation handles GET /farmers/location/:location
func (h *FarmerHandler) ListFarmersByLocation(c *gin.Context) {
	farmers, err := h.service.ListFarmersByLocation(c.Param("location"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": farmers})
}

// ListFarmerLivestock handles GET /farmers/:id/livestock
func (h *FarmerHandler) ListFarmerLivestock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid farmer ID"})
		return
	}

	listings, err := h.service.ListFarmerLivestock(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"livestock": listings})
}
