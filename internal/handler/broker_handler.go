package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkulima/livestock-market/internal/database/service"
)

// BrokerHandler handles broker profile endpoints
type BrokerHandler struct {
	service service.BrokerService
	logger  *slog.Logger
}

// NewBrokerHandler creates a new broker handler instance
func NewBrokerHandler(service service.BrokerService, logger *slog.Logger) *BrokerHandler {
	return &BrokerHandler{
		service: service,
		logger:  logger,
	}
}

// CreateBrokerRequest represents the broker profile payload
type CreateBrokerRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Address     string `json:"address"`
}

// ListBrokers handles GET /brokers
func (h *BrokerHandler) ListBrokers(c *gin.Context) {
	brokers, err := h.service.ListBrokers()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"brokers": brokers})
}

// GetBroker handles GET /broker/:id
func (h *BrokerHandler) GetBroker(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid broker ID"})
		return
	}

	broker, err := h.service.GetBroker(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"broker": broker})
}

// CreateBroker handles POST /broker for the authenticated user
func (h *BrokerHandler) CreateBroker(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req CreateBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name is required"})
		return
	}

	broker, err := h.service.CreateBroker(userID, req.CompanyName, req.Address)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Broker profile created successfully",
		"broker":  broker,
	})
}
